package services

import (
	"javajam_server/database"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// newMockDB returns a bun handle backed by sqlmock, matching queries by
// regular expression so tests pin down the shape of a query without
// reproducing bun's exact formatting.
func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	return &database.DB{DB: bun.NewDB(sqldb, pgdialect.New())}, mock
}

func testLogger() *gecho.Logger {
	return gecho.NewDefaultLogger()
}

func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}
