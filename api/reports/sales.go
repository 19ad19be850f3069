package reports

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchSalesReport handles GET /reports/sales: per-product breakdown,
// per-category totals and the most popular product, computed fresh on
// every request.
func (rrm *ReportRoutesManager) FetchSalesReport(w http.ResponseWriter, r *http.Request) {
	report, err := rrm.reportService.GetSalesReport(r.Context())
	if err != nil {
		rrm.logger.Error("Failed to compute sales report", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to compute sales report"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(report),
		gecho.Send(),
	)
}
