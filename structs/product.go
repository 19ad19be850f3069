package structs

// PriceUpdate carries the editable fields of one product on the price
// screen. A nil PriceDouble leaves the column NULL (no double size);
// identity never changes through this surface.
type PriceUpdate struct {
	ProductID   int      `json:"product_id"`
	ProductName *string  `json:"product_name,omitempty"`
	PriceSingle float64  `json:"price_single"`
	PriceDouble *float64 `json:"price_double,omitempty"`
}

type UpdatePricesRequest struct {
	Products []PriceUpdate `json:"products"`
}
