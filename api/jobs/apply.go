package jobs

import (
	"javajam_server/lib"
	"javajam_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// SubmitApplication handles POST /jobs/applications. Applications are
// validated and acknowledged, nothing more.
func (jrm *JobsRoutesManager) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.JobApplication](r)
	if err != nil {
		jrm.logger.Warn("Failed to extract job application body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check your application and try again"),
			gecho.Send(),
		)
		return
	}

	result := jrm.jobsService.SubmitApplication(body)
	if !result.Accepted {
		gecho.BadRequest(w,
			gecho.WithMessage(result.Message),
			gecho.WithData(result),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage(result.Message),
		gecho.WithData(result),
		gecho.Send(),
	)
}

// ValidateField handles POST /jobs/applications/validate for on-change
// validation of a single form field.
func (jrm *JobsRoutesManager) ValidateField(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.FieldValidationRequest](r)
	if err != nil || body.Field == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("A field name is required"),
			gecho.Send(),
		)
		return
	}

	result := jrm.jobsService.ValidateField(body)

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}
