package tables

type Product struct {
	tableName   struct{} `bun:"table:products,alias:p"`
	ProductID   int      `bun:"product_id,pk,autoincrement" json:"product_id"`
	ProductName string   `bun:"product_name,notnull" json:"product_name"`
	Description *string  `bun:"description" json:"description,omitempty"`
	PriceSingle float64  `bun:"price_single,notnull" json:"price_single"`
	PriceDouble *float64 `bun:"price_double" json:"price_double,omitempty"` // NULL means the product has no double size
	Image       *string  `bun:"image" json:"image,omitempty"`

	OrderDetails []OrderDetail `bun:"rel:has-many,join:product_id=product_id" json:"-"`
}

// HasDouble reports whether the product offers a double-shot size.
func (p *Product) HasDouble() bool {
	return p.PriceDouble != nil
}
