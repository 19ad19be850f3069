package admin

import (
	"errors"
	"javajam_server/api/middleware"
	"javajam_server/lib"
	"javajam_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// UpdatePrices handles PUT /admin/products/prices. The whole batch is
// validated before the first write; a zero or negative price anywhere
// rejects everything. Writes themselves are sequential, so a mid-batch
// database failure leaves the earlier updates in place.
func (ar *AdminRoutesManager) UpdatePrices(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.UpdatePricesRequest](r)
	if err != nil || len(body.Products) == 0 {
		ar.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the product price information"),
			gecho.Send(),
		)
		return
	}

	if err := ar.productService.UpdatePrices(r.Context(), body.Products); err != nil {
		if errors.Is(err, lib.ErrInvalidPrice) {
			ar.logger.Warn("Price update rejected", gecho.Field("error", err))
			gecho.BadRequest(w,
				gecho.WithMessage("All prices must be greater than zero"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}

		ar.logger.Error("Failed to update prices", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to update prices"),
			gecho.Send(),
		)
		return
	}

	if claims, ok := middleware.GetClaimsFromContext(r.Context()); ok {
		ar.logger.Info("Prices updated by manager session",
			gecho.Field("session", claims.Jti.String()),
			gecho.Field("count", len(body.Products)))
	}

	gecho.Success(w,
		gecho.WithMessage("Prices updated"),
		gecho.WithData(map[string]any{"updated": len(body.Products)}),
		gecho.Send(),
	)
}
