package jobs

import (
	"javajam_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type JobsRoutesManager struct {
	logger      *gecho.Logger
	jobsService *services.JobsService
}

func NewJobsRoutesManager(
	logger *gecho.Logger,
	jobsService *services.JobsService,
) *JobsRoutesManager {
	return &JobsRoutesManager{
		logger:      logger,
		jobsService: jobsService,
	}
}

func (jrm *JobsRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/jobs", func(r chi.Router) {
		r.Post("/applications", jrm.SubmitApplication)
		r.Post("/applications/validate", jrm.ValidateField)
	})
}
