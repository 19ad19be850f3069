package structs

// Size selects which of a product's prices applies to an order line.
type Size string

const (
	SizeSingle  Size = "single"
	SizeDouble  Size = "double"
	SizeEndless Size = "endless" // flat price, legacy static menu only
)

// PriceOptions holds the prices a menu item offers. Absent sizes are nil.
type PriceOptions struct {
	Single  *float64 `json:"single,omitempty"`
	Double  *float64 `json:"double,omitempty"`
	Endless *float64 `json:"endless,omitempty"`
}

type MenuItem struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Icon        string       `json:"icon"`
	Description string       `json:"description"`
	Price       PriceOptions `json:"price"`
	Image       string       `json:"image,omitempty"`
	Sizes       []Size       `json:"sizes"`
}
