package api

import (
	"javajam_server/api/admin"
	"javajam_server/api/auth"
	"javajam_server/api/debug"
	"javajam_server/api/health"
	"javajam_server/api/jobs"
	"javajam_server/api/menu"
	"javajam_server/api/middleware"
	"javajam_server/api/orders"
	"javajam_server/api/pages"
	"javajam_server/api/products"
	"javajam_server/api/reports"
	"javajam_server/services"
	"javajam_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes *products.ProductRoutesManager
	menuRoutes    *menu.MenuRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	authRoutes    *auth.AuthRoutesManager
	jobsRoutes    *jobs.JobsRoutesManager
	pagesRoutes   *pages.PagesRoutesManager
	reportRoutes  *reports.ReportRoutesManager
	healthRoutes  *health.HealthRoutesManager
	debugRoutes   *debug.DebugRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		productRoutes: products.NewProductRoutesManager(logger, sm.ProductService),
		menuRoutes:    menu.NewMenuRoutesManager(logger, sm.MenuService),
		orderRoutes:   orders.NewOrderRoutesManager(logger, sm.OrderService),
		adminRoutes:   admin.NewAdminRoutesManager(logger, sm.ProductService, mw),
		authRoutes:    auth.NewAuthRoutesManager(logger, sm.AuthService, cfg, mw),
		jobsRoutes:    jobs.NewJobsRoutesManager(logger, sm.JobsService),
		pagesRoutes:   pages.NewPagesRoutesManager(logger, sm.EventsService),
		reportRoutes:  reports.NewReportRoutesManager(logger, sm.ReportService),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
		debugRoutes:   debug.NewDebugRoutesManager(sm.CacheService, sm.ProductService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.menuRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.jobsRoutes.RegisterRoutes(r)
	rm.pagesRoutes.RegisterRoutes(r)
	rm.reportRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
