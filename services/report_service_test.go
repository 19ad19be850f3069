package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	productSalesPattern   = `SELECT p\.product_id, p\.product_name`
	categorySalesPattern  = `SELECT od\.is_double`
	popularProductPattern = `ORDER BY SUM\(od\.quantity\) DESC`
)

func productSalesColumns() []string {
	return []string{"product_id", "product_name", "single_shot_qty", "single_shot_sales", "double_shot_qty", "double_shot_sales"}
}

func TestReportService_GetProductSales(t *testing.T) {
	t.Run("unsold products report zeros, not nulls", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(productSalesPattern).WillReturnRows(
			sqlmock.NewRows(productSalesColumns()).
				AddRow(1, "Just Java", 3, 6.00, 0, 0.0).
				AddRow(2, "Cafe au Lait", nil, nil, nil, nil),
		)

		rs := NewReportService(testLogger(), db)

		sales, err := rs.GetProductSales(context.Background())
		require.NoError(t, err)
		require.Len(t, sales, 2)

		assert.Equal(t, int64(3), sales[0].SingleShotQty)
		assert.Equal(t, 6.00, sales[0].SingleShotSales)
		assert.Equal(t, int64(3), sales[0].TotalQty)
		assert.Equal(t, 6.00, sales[0].TotalSales)

		assert.Equal(t, "Cafe au Lait", sales[1].ProductName)
		assert.Equal(t, int64(0), sales[1].SingleShotQty)
		assert.Equal(t, 0.0, sales[1].SingleShotSales)
		assert.Equal(t, int64(0), sales[1].DoubleShotQty)
		assert.Equal(t, 0.0, sales[1].TotalSales)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("totals combine both shot types", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(productSalesPattern).WillReturnRows(
			sqlmock.NewRows(productSalesColumns()).
				AddRow(3, "Iced Cappuccino", 2, 9.50, 4, 21.00),
		)

		rs := NewReportService(testLogger(), db)

		sales, err := rs.GetProductSales(context.Background())
		require.NoError(t, err)
		require.Len(t, sales, 1)
		assert.Equal(t, int64(6), sales[0].TotalQty)
		assert.Equal(t, 30.50, sales[0].TotalSales)
	})
}

func TestReportService_GetCategorySales(t *testing.T) {
	t.Run("one row per shot type with names", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(categorySalesPattern).WillReturnRows(
			sqlmock.NewRows([]string{"is_double", "quantity", "sales"}).
				AddRow(false, 5, 10.00).
				AddRow(true, 2, 6.00),
		)

		rs := NewReportService(testLogger(), db)

		sales, err := rs.GetCategorySales(context.Background())
		require.NoError(t, err)
		require.Len(t, sales, 2)

		assert.Equal(t, "Single Shot", sales[0].Category)
		assert.False(t, sales[0].IsDouble)
		assert.Equal(t, int64(5), sales[0].Quantity)
		assert.Equal(t, "Double Shot", sales[1].Category)
		assert.True(t, sales[1].IsDouble)
	})

	t.Run("no order lines means no category rows at all", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(categorySalesPattern).WillReturnRows(
			sqlmock.NewRows([]string{"is_double", "quantity", "sales"}),
		)

		rs := NewReportService(testLogger(), db)

		sales, err := rs.GetCategorySales(context.Background())
		require.NoError(t, err)
		assert.Empty(t, sales)
	})
}

func TestReportService_GetMostPopularProduct(t *testing.T) {
	t.Run("best seller wins", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(popularProductPattern).WillReturnRows(
			sqlmock.NewRows([]string{"product_name", "is_double", "quantity"}).
				AddRow("Iced Cappuccino", true, 12),
		)

		rs := NewReportService(testLogger(), db)

		popular, err := rs.GetMostPopularProduct(context.Background())
		require.NoError(t, err)
		require.NotNil(t, popular)
		assert.Equal(t, "Iced Cappuccino", popular.ProductName)
		assert.True(t, popular.IsDouble)
		assert.Equal(t, int64(12), popular.Quantity)
	})

	t.Run("unsold winner from the left join coalesces to zero", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(popularProductPattern).WillReturnRows(
			sqlmock.NewRows([]string{"product_name", "is_double", "quantity"}).
				AddRow("Just Java", nil, nil),
		)

		rs := NewReportService(testLogger(), db)

		popular, err := rs.GetMostPopularProduct(context.Background())
		require.NoError(t, err)
		require.NotNil(t, popular)
		assert.Equal(t, "Just Java", popular.ProductName)
		assert.False(t, popular.IsDouble)
		assert.Equal(t, int64(0), popular.Quantity)
	})

	t.Run("empty catalog yields nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(popularProductPattern).WillReturnRows(
			sqlmock.NewRows([]string{"product_name", "is_double", "quantity"}),
		)

		rs := NewReportService(testLogger(), db)

		popular, err := rs.GetMostPopularProduct(context.Background())
		require.NoError(t, err)
		assert.Nil(t, popular)
	})
}

func TestReportService_GetSalesReport(t *testing.T) {
	t.Run("combines all three aggregates", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(productSalesPattern).WillReturnRows(
			sqlmock.NewRows(productSalesColumns()).
				AddRow(1, "Just Java", 3, 6.00, 0, 0.0),
		)
		mock.ExpectQuery(categorySalesPattern).WillReturnRows(
			sqlmock.NewRows([]string{"is_double", "quantity", "sales"}).
				AddRow(false, 3, 6.00),
		)
		mock.ExpectQuery(popularProductPattern).WillReturnRows(
			sqlmock.NewRows([]string{"product_name", "is_double", "quantity"}).
				AddRow("Just Java", false, 3),
		)

		rs := NewReportService(testLogger(), db)

		report, err := rs.GetSalesReport(context.Background())
		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Len(t, report.ProductSales, 1)
		assert.Len(t, report.CategorySales, 1)
		require.NotNil(t, report.PopularProduct)
		assert.Equal(t, "Just Java", report.PopularProduct.ProductName)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("any failing aggregate fails the whole report", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(productSalesPattern).WillReturnError(assert.AnError)

		rs := NewReportService(testLogger(), db)

		report, err := rs.GetSalesReport(context.Background())
		assert.Error(t, err)
		assert.Nil(t, report)
	})
}
