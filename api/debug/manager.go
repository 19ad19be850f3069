package debug

import (
	"javajam_server/config"
	"javajam_server/services"

	"github.com/go-chi/chi/v5"
)

type DebugRoutesManager struct {
	cacheService   *services.CacheService
	productService *services.ProductService
}

func NewDebugRoutesManager(cacheService *services.CacheService, productService *services.ProductService) *DebugRoutesManager {
	return &DebugRoutesManager{
		cacheService:   cacheService,
		productService: productService,
	}
}

func (drm *DebugRoutesManager) RegisterRoutes(r chi.Router) {
	// Debug routes - only in non-production environments
	if !config.IsProduction() {
		r.Route("/debug", func(r chi.Router) {
			r.Get("/cache", drm.CacheStats)
			r.Post("/cache/invalidate", drm.InvalidateProductCache)
		})
	}
}
