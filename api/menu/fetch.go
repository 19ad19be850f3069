package menu

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchMenu handles GET /menu: the customer-facing menu built from the
// product catalog, with per-size price options.
func (mrm *MenuRoutesManager) FetchMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := mrm.menuService.GetMenu(ctx)
	if err != nil {
		mrm.logger.Error("Failed to build menu", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch menu"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items": items,
			"count": len(items),
		}),
		gecho.Send(),
	)
}

// FetchStaticMenu handles GET /menu/static: the legacy hard-coded menu,
// including the endless-cup flat price for Just Java.
func (mrm *MenuRoutesManager) FetchStaticMenu(w http.ResponseWriter, r *http.Request) {
	items := mrm.menuService.StaticMenu()

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items": items,
			"count": len(items),
		}),
		gecho.Send(),
	)
}
