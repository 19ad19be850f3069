package tables

// OrderDetail is one order line. There is no parent order aggregate:
// every line stands on its own and is only ever read in aggregate by
// the sales report.
type OrderDetail struct {
	tableName     struct{} `bun:"table:order_details,alias:od"`
	OrderDetailID int      `bun:"order_detail_id,pk,autoincrement" json:"order_detail_id"`
	ProductID     *int     `bun:"product_id" json:"product_id,omitempty"` // nullable so lines survive product deletion
	Quantity      int      `bun:"quantity,notnull" json:"quantity"`
	IsDouble      bool     `bun:"is_double,default:false" json:"is_double"`
	Subtotal      float64  `bun:"subtotal,notnull" json:"subtotal"` // quantity * unit price, computed by the caller

	Product *Product `bun:"rel:belongs-to,join:product_id=product_id" json:"-"`
}
