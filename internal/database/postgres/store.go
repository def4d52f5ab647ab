package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Greenhouse_Go/internal/repository"
)

// Store implements repository.Store on PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a Store on an open pool. The pool is owned by the store.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *Store) Close() {
	s.db.Close()
}
