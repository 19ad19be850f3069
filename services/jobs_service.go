package services

import (
	"javajam_server/structs"
	"regexp"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// JobsService validates job applications. Nothing is stored and nothing
// is sent anywhere; a valid submission only earns the thank-you message.
type JobsService struct {
	logger *gecho.Logger
}

func NewJobsService(logger *gecho.Logger) *JobsService {
	return &JobsService{
		logger: logger,
	}
}

var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,4}$`)
)

const (
	msgNameAndEmailRequired = "Please enter your name and email."
	msgNameRequired         = "Please enter your name."
	msgEmailRequired        = "Please enter your email."
	msgFormErrors           = "Please correct the errors in the form."
	msgThankYou             = "Thank you for your interest in JavaJam Coffee House!"

	errNameFormat      = "Name should only contain alphabets and spaces."
	errEmailFormat     = "Please enter a valid email address."
	errStartDateFuture = "Start date must be in the future."
)

// ValidateName returns an error message for a non-empty name that fails
// the format check. Empty names are handled by the submission-level
// required checks, not here.
func (js *JobsService) ValidateName(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if !nameRegex.MatchString(value) {
		return errNameFormat
	}
	return ""
}

func (js *JobsService) ValidateEmail(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if !emailRegex.MatchString(value) {
		return errEmailFormat
	}
	return ""
}

// ValidateStartDate requires a date strictly after today. An unparseable
// value gets the same message; the form only offers date input, so
// anything else is treated as not-in-the-future.
func (js *JobsService) ValidateStartDate(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return errStartDateFuture
	}
	if !date.After(time.Now()) {
		return errStartDateFuture
	}
	return ""
}

// ValidateField drives the per-field on-change validation endpoint.
// Unknown fields validate clean; the form has no server-side knowledge
// of fields it does not check.
func (js *JobsService) ValidateField(req *structs.FieldValidationRequest) *structs.FieldValidationResult {
	var msg string
	switch req.Field {
	case "name":
		msg = js.ValidateName(req.Value)
	case "email":
		msg = js.ValidateEmail(req.Value)
	case "start_date":
		msg = js.ValidateStartDate(req.Value)
	}

	return &structs.FieldValidationResult{
		Field: req.Field,
		Error: msg,
		Valid: msg == "",
	}
}

// SubmitApplication applies the full form rules. Required checks on name
// and email take priority over format errors; only when both are present
// do the per-field validators decide the outcome.
func (js *JobsService) SubmitApplication(app *structs.JobApplication) *structs.ApplicationResult {
	nameEmpty := strings.TrimSpace(app.Name) == ""
	emailEmpty := strings.TrimSpace(app.Email) == ""

	switch {
	case nameEmpty && emailEmpty:
		return rejected(msgNameAndEmailRequired, nil)
	case nameEmpty:
		return rejected(msgNameRequired, nil)
	case emailEmpty:
		return rejected(msgEmailRequired, nil)
	}

	fieldErrors := make(map[string]string)
	if msg := js.ValidateName(app.Name); msg != "" {
		fieldErrors["name"] = msg
	}
	if msg := js.ValidateEmail(app.Email); msg != "" {
		fieldErrors["email"] = msg
	}
	if msg := js.ValidateStartDate(app.StartDate); msg != "" {
		fieldErrors["start_date"] = msg
	}

	if len(fieldErrors) > 0 {
		return rejected(msgFormErrors, fieldErrors)
	}

	js.logger.Info("Job application received",
		gecho.Field("name", app.Name),
		gecho.Field("start_date", app.StartDate),
		gecho.Field("experience_chars", len(app.Experience)))

	return &structs.ApplicationResult{
		Accepted: true,
		Message:  msgThankYou,
	}
}

func rejected(message string, fieldErrors map[string]string) *structs.ApplicationResult {
	return &structs.ApplicationResult{
		Accepted: false,
		Message:  message,
		Errors:   fieldErrors,
	}
}
