package lib

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: "23505"},
			expected: ErrConflict,
		},
		{
			name:     "foreign key violation maps to missing product",
			err:      &pgconn.PgError{Code: "23503"},
			expected: ErrProductNotFound,
		},
		{
			name:     "no data found",
			err:      &pgconn.PgError{Code: "P0002"},
			expected: ErrNotFound,
		},
		{
			name:     "unknown sqlstate passes through",
			err:      &pgconn.PgError{Code: "53300"},
			expected: &pgconn.PgError{Code: "53300"},
		},
		{
			name:     "plain error passes through",
			err:      errors.New("boom"),
			expected: errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapPgError(tt.err))
		})
	}
}
