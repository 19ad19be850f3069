package structs

// OrderLineRequest is one line of a placed order. The subtotal is
// computed by the client from the currently selected size and is stored
// as given, never recomputed server-side.
type OrderLineRequest struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	IsDouble  bool    `json:"is_double"`
	Subtotal  float64 `json:"subtotal"`
}

type OrderRequest struct {
	Lines []OrderLineRequest `json:"lines"`
}

// OrderConfirmation is returned on success. The reference is not
// persisted; it only gives the customer something to quote.
type OrderConfirmation struct {
	Reference   string `json:"reference"`
	LinesPlaced int    `json:"lines_placed"`
}
