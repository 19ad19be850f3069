package lib

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Storefront errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoPriceForSize  = errors.New("no valid price for selected size")
	ErrInvalidPrice    = errors.New("price should be greater than 0")
)

func MapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "23503": // foreign_key_violation
			return ErrProductNotFound
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
