package services

import (
	"context"
	"javajam_server/lib"
	"javajam_server/structs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropEmptyLines(t *testing.T) {
	lines := []structs.OrderLineRequest{
		{ProductID: 1, Quantity: 2, Subtotal: 4.00},
		{ProductID: 2, Quantity: 0, Subtotal: 0},
		{ProductID: 3, Quantity: -1, Subtotal: 2.00},
		{ProductID: 2, Quantity: 1, IsDouble: true, Subtotal: 3.00},
	}

	kept := DropEmptyLines(lines)

	require.Len(t, kept, 2)
	assert.Equal(t, 1, kept[0].ProductID)
	assert.Equal(t, 2, kept[1].ProductID)
}

// catalogRows mirrors the three seed products.
func catalogRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"product_id", "product_name", "description", "price_single", "price_double", "image"}).
		AddRow(1, "Just Java", "Regular house blend.", 2.00, nil, nil).
		AddRow(2, "Cafe au Lait", "Coffee with steamed milk.", 2.00, 3.00, nil).
		AddRow(3, "Iced Cappuccino", "Espresso with icy-cold milk.", 4.75, 5.25, nil)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name          string
		request       structs.OrderRequest
		setupMock     func(mock sqlmock.Sqlmock)
		expectedErr   error
		expectedLines int
	}{
		{
			name: "all lines dropped, nothing written",
			request: structs.OrderRequest{Lines: []structs.OrderLineRequest{
				{ProductID: 1, Quantity: 0},
				{ProductID: 2, Quantity: -2},
			}},
			setupMock:     func(mock sqlmock.Sqlmock) {},
			expectedLines: 0,
		},
		{
			name:          "empty order, nothing written",
			request:       structs.OrderRequest{},
			setupMock:     func(mock sqlmock.Sqlmock) {},
			expectedLines: 0,
		},
		{
			name: "unknown product rejects the whole batch before any write",
			request: structs.OrderRequest{Lines: []structs.OrderLineRequest{
				{ProductID: 2, Quantity: 1, Subtotal: 2.00},
				{ProductID: 99, Quantity: 1, Subtotal: 2.00},
			}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM "products"`).WillReturnRows(catalogRows())
			},
			expectedErr: lib.ErrProductNotFound,
		},
		{
			name: "double shot of a single-only product is rejected",
			request: structs.OrderRequest{Lines: []structs.OrderLineRequest{
				{ProductID: 1, Quantity: 1, IsDouble: true, Subtotal: 2.00},
			}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM "products"`).WillReturnRows(catalogRows())
			},
			expectedErr: lib.ErrNoPriceForSize,
		},
		{
			name: "two double lait subtotal stored as given",
			request: structs.OrderRequest{Lines: []structs.OrderLineRequest{
				{ProductID: 2, Quantity: 2, IsDouble: true, Subtotal: 8.00},
			}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM "products"`).WillReturnRows(catalogRows())
				mock.ExpectQuery(`INSERT INTO "order_details"`).
					WillReturnRows(sqlmock.NewRows([]string{"order_detail_id"}).AddRow(1))
			},
			expectedLines: 1,
		},
		{
			name: "mixed order inserts all surviving lines in one statement",
			request: structs.OrderRequest{Lines: []structs.OrderLineRequest{
				{ProductID: 1, Quantity: 1, Subtotal: 2.00},
				{ProductID: 3, Quantity: 0, Subtotal: 0},
				{ProductID: 3, Quantity: 2, IsDouble: true, Subtotal: 10.50},
			}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM "products"`).WillReturnRows(catalogRows())
				mock.ExpectQuery(`INSERT INTO "order_details"`).
					WillReturnRows(sqlmock.NewRows([]string{"order_detail_id"}).AddRow(1).AddRow(2))
			},
			expectedLines: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setupMock(mock)

			productService := NewProductService(testLogger(), db, nil)
			orderService := NewOrderService(testLogger(), db, productService)

			confirmation, err := orderService.PlaceOrder(context.Background(), &tt.request)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, confirmation)
			} else {
				require.NoError(t, err)
				require.NotNil(t, confirmation)
				assert.Equal(t, tt.expectedLines, confirmation.LinesPlaced)
				assert.Regexp(t, `^JJ-[A-Z0-9]{4}$`, confirmation.Reference)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
