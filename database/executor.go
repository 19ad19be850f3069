package database

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

func (q *QueryBuilder[T]) applyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout > 0 {
		return context.WithTimeout(ctx, q.timeout)
	}
	return ctx, func() {}
}

func (q *QueryBuilder[T]) applySelectClauses(query *bun.SelectQuery) *bun.SelectQuery {
	for _, w := range q.wheres {
		query = query.Where("? = ?", bun.Ident(w.Column), w.Value)
	}
	for _, o := range q.orders {
		query = query.OrderExpr("? "+o.Direction, bun.Ident(o.Column))
	}
	return query
}

// All executes the query and returns all matching records with automatic retry.
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	start := time.Now()
	var data []T

	ctx, cancel := q.applyContext(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		data = nil // reset on retry
		query := q.applySelectClauses(q.db.NewSelect().Model(&data))
		return query.Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// Count executes the query and returns the count of matching records.
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	start := time.Now()
	var count int

	ctx, cancel := q.applyContext(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		var model T
		query := q.applySelectClauses(q.db.NewSelect().Model(&model))
		var err error
		count, err = query.Count(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w (took %v)", err, time.Since(start))
	}

	return count, nil
}

// InsertMany inserts records as a single multi-row statement with
// automatic retry. An empty slice is a no-op.
func (q *QueryBuilder[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	start := time.Now()

	if len(data) == 0 {
		return data, nil
	}

	ctx, cancel := q.applyContext(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		_, err := q.db.NewInsert().Model(&data).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute bulk insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// Update updates records matching the query from a column->value map and
// returns the number of affected rows.
func (q *QueryBuilder[T]) Update(ctx context.Context, data map[string]any) (int, error) {
	start := time.Now()
	var rowsAffected int64

	ctx, cancel := q.applyContext(ctx)
	defer cancel()

	err := WithRetry(ctx, func() error {
		var model T
		query := q.db.NewUpdate().Model(&model)
		for key, value := range data {
			query = query.Set("? = ?", bun.Ident(key), value)
		}
		for _, w := range q.wheres {
			query = query.Where("? = ?", bun.Ident(w.Column), w.Value)
		}

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}
