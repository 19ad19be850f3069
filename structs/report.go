package structs

// ProductSales is one row of the per-product breakdown. Aggregates are
// always coalesced to zero before they reach this struct; a product with
// no order lines reports zeros, never nulls.
type ProductSales struct {
	ProductID       int     `json:"product_id"`
	ProductName     string  `json:"product_name"`
	SingleShotQty   int64   `json:"single_shot_qty"`
	SingleShotSales float64 `json:"single_shot_sales"`
	DoubleShotQty   int64   `json:"double_shot_qty"`
	DoubleShotSales float64 `json:"double_shot_sales"`
	TotalQty        int64   `json:"total_qty"`
	TotalSales      float64 `json:"total_sales"`
}

// CategorySales is one row of the per-category breakdown. Categories
// with no order lines are omitted entirely.
type CategorySales struct {
	IsDouble bool    `json:"is_double"`
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Sales    float64 `json:"sales"`
}

type PopularProduct struct {
	ProductName string `json:"product_name"`
	IsDouble    bool   `json:"is_double"`
	Quantity    int64  `json:"quantity"`
}

type SalesReport struct {
	ProductSales   []ProductSales  `json:"product_sales"`
	CategorySales  []CategorySales `json:"category_sales"`
	PopularProduct *PopularProduct `json:"popular_product,omitempty"`
}
