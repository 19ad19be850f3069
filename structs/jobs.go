package structs

// JobApplication is the job form payload. Applications are validated
// only; nothing is persisted or sent anywhere.
type JobApplication struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	Experience string `json:"experience"`
}

// FieldValidationRequest validates a single field on change.
type FieldValidationRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type FieldValidationResult struct {
	Field string `json:"field"`
	Error string `json:"error,omitempty"`
	Valid bool   `json:"valid"`
}

// ApplicationResult is the outcome of a full form submission. Errors is
// keyed by field name and only populated when Accepted is false.
type ApplicationResult struct {
	Accepted bool              `json:"accepted"`
	Message  string            `json:"message"`
	Errors   map[string]string `json:"errors,omitempty"`
}
