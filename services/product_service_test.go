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

func TestProductService_GetAllProducts(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM "products"(.+)ORDER BY "product_id" ASC`).
		WillReturnRows(catalogRows())

	ps := NewProductService(testLogger(), db, nil)

	products, err := ps.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "Just Java", products[0].ProductName)
	assert.Nil(t, products[0].PriceDouble)
	assert.False(t, products[0].HasDouble())

	require.NotNil(t, products[1].PriceDouble)
	assert.Equal(t, 3.00, *products[1].PriceDouble)
	assert.True(t, products[1].HasDouble())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductService_CountProducts(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	ps := NewProductService(testLogger(), db, nil)

	count, err := ps.CountProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductService_ValidatePriceUpdates(t *testing.T) {
	ps := NewProductService(testLogger(), nil, nil)

	tests := []struct {
		name        string
		updates     []structs.PriceUpdate
		expectedErr error
	}{
		{
			name: "valid batch",
			updates: []structs.PriceUpdate{
				{ProductID: 1, PriceSingle: 2.50},
				{ProductID: 2, PriceSingle: 2.25, PriceDouble: floatPtr(3.25)},
			},
		},
		{
			name: "zero single price rejects the batch",
			updates: []structs.PriceUpdate{
				{ProductID: 1, PriceSingle: 2.50},
				{ProductID: 2, PriceSingle: 0},
			},
			expectedErr: lib.ErrInvalidPrice,
		},
		{
			name: "negative single price rejects the batch",
			updates: []structs.PriceUpdate{
				{ProductID: 1, PriceSingle: -1.00},
			},
			expectedErr: lib.ErrInvalidPrice,
		},
		{
			name: "zero double price rejects the batch when present",
			updates: []structs.PriceUpdate{
				{ProductID: 2, PriceSingle: 2.00, PriceDouble: floatPtr(0)},
			},
			expectedErr: lib.ErrInvalidPrice,
		},
		{
			name: "absent double price is exempt",
			updates: []structs.PriceUpdate{
				{ProductID: 1, PriceSingle: 2.00},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ps.ValidatePriceUpdates(tt.updates)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductService_UpdatePrices(t *testing.T) {
	t.Run("invalid batch writes nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		ps := NewProductService(testLogger(), db, nil)

		err := ps.UpdatePrices(context.Background(), []structs.PriceUpdate{
			{ProductID: 1, PriceSingle: 3.00},
			{ProductID: 2, PriceSingle: -1.00},
		})

		assert.ErrorIs(t, err, lib.ErrInvalidPrice)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("valid batch updates each product in turn", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "products"(.+)WHERE (.+)"product_id" = 1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "products"(.+)WHERE (.+)"product_id" = 2`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ps := NewProductService(testLogger(), db, nil)

		err := ps.UpdatePrices(context.Background(), []structs.PriceUpdate{
			{ProductID: 1, PriceSingle: 2.10},
			{ProductID: 2, PriceSingle: 2.10, PriceDouble: floatPtr(3.10), ProductName: strPtr("Cafe au Lait Grande")},
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database failure mid-batch surfaces the error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "products"(.+)"product_id" = 1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "products"(.+)"product_id" = 2`).
			WillReturnError(assert.AnError)

		ps := NewProductService(testLogger(), db, nil)

		err := ps.UpdatePrices(context.Background(), []structs.PriceUpdate{
			{ProductID: 1, PriceSingle: 2.10},
			{ProductID: 2, PriceSingle: 2.10},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product 2")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
