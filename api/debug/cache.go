package debug

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CacheStats reports redis pool statistics next to the live product
// count, so a stale cache is visible at a glance.
func (drm *DebugRoutesManager) CacheStats(w http.ResponseWriter, r *http.Request) {
	stats := drm.cacheService.Stats()

	if count, err := drm.productService.CountProducts(r.Context()); err == nil {
		stats["table_products"] = count
	}

	gecho.Success(w,
		gecho.WithData(stats),
		gecho.Send(),
	)
}

func (drm *DebugRoutesManager) InvalidateProductCache(w http.ResponseWriter, r *http.Request) {
	if err := drm.cacheService.InvalidateProducts(); err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to invalidate product cache"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product cache invalidated"),
		gecho.Send(),
	)
}
