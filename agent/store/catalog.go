package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// SearchProducts returns all products whose name, description, or tag set
// contains query as a substring, optionally restricted to one category.
// Matching is case-insensitive (SQLite LIKE semantics). An empty query
// matches everything. Results are ordered by rating descending; ties keep
// insertion order, so identical inputs always yield identical output.
func (s *Store) SearchProducts(ctx context.Context, query, category string) ([]Product, error) {
	pattern := "%" + query + "%"

	var products []Product
	q := s.db.NewSelect().
		Model(&products).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("name LIKE ?", pattern).
				WhereOr("description LIKE ?", pattern).
				WhereOr("tags LIKE ?", pattern)
		})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	if err := q.OrderExpr("rating DESC, rowid ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// GetProduct returns the product with the given id, or nil when absent.
func (s *Store) GetProduct(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := s.db.NewSelect().Model(&p).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &p, nil
}

// Categories returns the distinct category names present in the catalog.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.db.NewSelect().
		Model((*Product)(nil)).
		ColumnExpr("DISTINCT category").
		Scan(ctx, &categories)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
