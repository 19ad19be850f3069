package database

import (
	"time"
)

// WhereClause represents a column = value filter. Equality is the only
// operator the catalog queries need.
type WhereClause struct {
	Column string
	Value  any
}

// OrderClause represents an ORDER BY clause.
type OrderClause struct {
	Column    string
	Direction string
}

// OrderDirection represents sort direction.
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// QueryBuilder provides a fluent, type-safe API for building database
// queries over bun. It covers exactly the clause surface this
// application issues: equality filters, ordering and timeouts. The
// report aggregates use raw SQL instead.
type QueryBuilder[T any] struct {
	db *DB

	wheres []*WhereClause
	orders []*OrderClause

	timeout time.Duration
}

// Query creates a new QueryBuilder instance.
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:     db,
		wheres: []*WhereClause{},
		orders: []*OrderClause{},
	}
}

// Where adds a WHERE condition (column = value).
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column: column,
		Value:  value,
	})
	return q
}

// OrderBy adds an ORDER BY clause.
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{
		Column:    column,
		Direction: string(direction),
	})
	return q
}

// Timeout sets a timeout for the query.
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}
