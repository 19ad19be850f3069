package products

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchAllProducts handles GET /products: the raw catalog rows, ordered
// by product ID, as the admin price screen expects them.
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := prm.productService.GetAllProducts(ctx)
	if err != nil {
		prm.logger.Error("Failed to fetch products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch products"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
		}),
		gecho.Send(),
	)
}
