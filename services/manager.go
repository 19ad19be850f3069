package services

import (
	"javajam_server/database"
	"javajam_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService    *AuthService
	CacheService   *CacheService
	HealthService  *HealthService
	ProductService *ProductService
	MenuService    *MenuService
	OrderService   *OrderService
	ReportService  *ReportService
	JobsService    *JobsService
	EventsService  *EventsService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(cfg, logger)
	cacheService := NewCacheService(logger, cfg)
	healthService := NewHealthService(logger, db)
	productService := NewProductService(logger, db, cacheService)
	menuService := NewMenuService(logger, productService)
	orderService := NewOrderService(logger, db, productService)
	reportService := NewReportService(logger, db)
	jobsService := NewJobsService(logger)
	eventsService := NewEventsService(logger)

	return &ServiceManager{
		AuthService:    authService,
		CacheService:   cacheService,
		HealthService:  healthService,
		ProductService: productService,
		MenuService:    menuService,
		OrderService:   orderService,
		ReportService:  reportService,
		JobsService:    jobsService,
		EventsService:  eventsService,
	}
}
