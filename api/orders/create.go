package orders

import (
	"errors"
	"javajam_server/lib"
	"javajam_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CreateOrder handles POST /orders. Lines with non-positive quantity are
// dropped before validation; a reference to an unknown product or an
// unpriced size rejects the whole order before anything is written.
func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		orm.logger.Warn("Failed to extract order request body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check your order and try again"),
			gecho.Send(),
		)
		return
	}

	confirmation, err := orm.orderService.PlaceOrder(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrProductNotFound) || errors.Is(err, lib.ErrNoPriceForSize) {
			orm.logger.Warn("Order rejected", gecho.Field("error", err))
			gecho.BadRequest(w,
				gecho.WithMessage("One or more items in your order are unavailable"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Failed to place order", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Unable to place your order. Please try again"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order placed"),
		gecho.WithData(confirmation),
		gecho.Send(),
	)
}
