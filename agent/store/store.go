// Package store holds the catalog and user state for the sandbox in an
// in-memory SQLite database accessed through bun. The schema is created and
// seeded on Open; nothing persists across process restarts.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// memoryDSN keeps the whole database in process memory. The database lives
// on the connection, so the pool is pinned to a single one; each Open gets
// its own isolated database.
const memoryDSN = ":memory:"

type Store struct {
	db  *bun.DB
	now func() time.Time
}

// Open creates the in-memory database, builds the schema, and loads the
// fixed seed data. Every call starts from the same state.
func Open(ctx context.Context) (*Store, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxIdleTime(0)

	s := &Store{
		db:  bun.NewDB(sqldb, sqlitedialect.New()),
		now: time.Now,
	}

	if err := s.initSchema(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	if err := s.seed(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// MustOpen is Open for wiring code that cannot proceed without a store.
func MustOpen(ctx context.Context) *Store {
	s, err := Open(ctx)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*Product)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	if _, err := s.db.NewCreateTable().
		Model((*userRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// Stats summarizes store contents for startup logging.
type Stats struct {
	Products   int
	Categories int
	CartItems  int
}

func (s *Store) Stats(ctx context.Context, userID string) (Stats, error) {
	products, err := s.db.NewSelect().Model((*Product)(nil)).Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count products: %w", err)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return Stats{}, err
	}
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Products:   products,
		Categories: len(categories),
		CartItems:  len(cart),
	}, nil
}
