package services

import (
	"context"
	"database/sql"
	"fmt"
	"javajam_server/database"
	"javajam_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

type ReportService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewReportService(logger *gecho.Logger, db *database.DB) *ReportService {
	return &ReportService{
		logger: logger,
		db:     db,
	}
}

// The per-product query LEFT JOINs so that products without sales still
// produce a row, while the per-category query groups order_details
// alone and omits empty categories entirely. The asymmetry is part of
// the report's contract, not an accident.
const (
	productSalesQuery = `
		SELECT p.product_id, p.product_name,
		       SUM(CASE WHEN od.is_double = FALSE THEN od.quantity ELSE 0 END) AS single_shot_qty,
		       SUM(CASE WHEN od.is_double = FALSE THEN od.subtotal ELSE 0 END) AS single_shot_sales,
		       SUM(CASE WHEN od.is_double = TRUE THEN od.quantity ELSE 0 END) AS double_shot_qty,
		       SUM(CASE WHEN od.is_double = TRUE THEN od.subtotal ELSE 0 END) AS double_shot_sales
		FROM products p
		LEFT JOIN order_details od ON p.product_id = od.product_id
		GROUP BY p.product_id, p.product_name
		ORDER BY p.product_id`

	categorySalesQuery = `
		SELECT od.is_double,
		       SUM(od.quantity) AS quantity,
		       SUM(od.subtotal) AS sales
		FROM order_details od
		GROUP BY od.is_double
		ORDER BY od.is_double`

	popularProductQuery = `
		SELECT p.product_name, od.is_double,
		       SUM(od.quantity) AS quantity
		FROM products p
		LEFT JOIN order_details od ON p.product_id = od.product_id
		GROUP BY p.product_id, p.product_name, od.is_double
		ORDER BY SUM(od.quantity) DESC
		LIMIT 1`
)

// Raw scan targets. Sums come back NULL for empty groups; coalescing to
// zero happens here, before any arithmetic, so totals never see NULL.
type productSalesRow struct {
	ProductID       int             `bun:"product_id"`
	ProductName     string          `bun:"product_name"`
	SingleShotQty   sql.NullInt64   `bun:"single_shot_qty"`
	SingleShotSales sql.NullFloat64 `bun:"single_shot_sales"`
	DoubleShotQty   sql.NullInt64   `bun:"double_shot_qty"`
	DoubleShotSales sql.NullFloat64 `bun:"double_shot_sales"`
}

type categorySalesRow struct {
	IsDouble bool            `bun:"is_double"`
	Quantity sql.NullInt64   `bun:"quantity"`
	Sales    sql.NullFloat64 `bun:"sales"`
}

type popularProductRow struct {
	ProductName string        `bun:"product_name"`
	IsDouble    sql.NullBool  `bun:"is_double"`
	Quantity    sql.NullInt64 `bun:"quantity"`
}

// GetSalesReport recomputes all three aggregates. Any query failure
// fails the whole report; no partial aggregates are returned.
func (rs *ReportService) GetSalesReport(ctx context.Context) (*structs.SalesReport, error) {
	startTime := time.Now()

	productSales, err := rs.GetProductSales(ctx)
	if err != nil {
		return nil, err
	}

	categorySales, err := rs.GetCategorySales(ctx)
	if err != nil {
		return nil, err
	}

	popular, err := rs.GetMostPopularProduct(ctx)
	if err != nil {
		return nil, err
	}

	rs.logger.Debug("Sales report computed",
		gecho.Field("products", len(productSales)),
		gecho.Field("categories", len(categorySales)),
		gecho.Field("duration", time.Since(startTime)))

	return &structs.SalesReport{
		ProductSales:   productSales,
		CategorySales:  categorySales,
		PopularProduct: popular,
	}, nil
}

// GetProductSales returns the per-product breakdown. Products with no
// order lines report zero aggregates.
func (rs *ReportService) GetProductSales(ctx context.Context) ([]structs.ProductSales, error) {
	rows, err := database.RawQuery[productSalesRow](rs.db, ctx, productSalesQuery)
	if err != nil {
		rs.logger.Error("Failed to aggregate sales by product", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to aggregate sales by product: %w", err)
	}

	sales := make([]structs.ProductSales, 0, len(rows))
	for _, row := range rows {
		s := structs.ProductSales{
			ProductID:       row.ProductID,
			ProductName:     row.ProductName,
			SingleShotQty:   row.SingleShotQty.Int64,
			SingleShotSales: row.SingleShotSales.Float64,
			DoubleShotQty:   row.DoubleShotQty.Int64,
			DoubleShotSales: row.DoubleShotSales.Float64,
		}
		s.TotalQty = s.SingleShotQty + s.DoubleShotQty
		s.TotalSales = s.SingleShotSales + s.DoubleShotSales
		sales = append(sales, s)
	}
	return sales, nil
}

// GetCategorySales returns the per-category breakdown: at most one row
// per shot type, none at all for categories without order lines.
func (rs *ReportService) GetCategorySales(ctx context.Context) ([]structs.CategorySales, error) {
	rows, err := database.RawQuery[categorySalesRow](rs.db, ctx, categorySalesQuery)
	if err != nil {
		rs.logger.Error("Failed to aggregate sales by category", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to aggregate sales by category: %w", err)
	}

	sales := make([]structs.CategorySales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, structs.CategorySales{
			IsDouble: row.IsDouble,
			Category: categoryName(row.IsDouble),
			Quantity: row.Quantity.Int64,
			Sales:    row.Sales.Float64,
		})
	}
	return sales, nil
}

// GetMostPopularProduct returns the best-selling (product, shot type)
// pair, or nil when there are no products at all. Ties fall wherever
// the database's ordering puts them.
func (rs *ReportService) GetMostPopularProduct(ctx context.Context) (*structs.PopularProduct, error) {
	row, err := database.RawQueryOne[popularProductRow](rs.db, ctx, popularProductQuery)
	if err != nil {
		rs.logger.Error("Failed to find most popular product", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to find most popular product: %w", err)
	}
	if row == nil {
		return nil, nil
	}

	return &structs.PopularProduct{
		ProductName: row.ProductName,
		IsDouble:    row.IsDouble.Bool,
		Quantity:    row.Quantity.Int64,
	}, nil
}

func categoryName(isDouble bool) string {
	if isDouble {
		return "Double Shot"
	}
	return "Single Shot"
}
