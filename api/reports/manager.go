package reports

import (
	"javajam_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ReportRoutesManager struct {
	logger        *gecho.Logger
	reportService *services.ReportService
}

func NewReportRoutesManager(
	logger *gecho.Logger,
	reportService *services.ReportService,
) *ReportRoutesManager {
	return &ReportRoutesManager{
		logger:        logger,
		reportService: reportService,
	}
}

func (rrm *ReportRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/reports/sales", rrm.FetchSalesReport)
}
