package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"showbooking/internal/domain"
)

// Store is the PostgreSQL implementation of domain.Store.
type Store struct {
	db *sql.DB
	q  DBTX
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

func (s *Store) Venues() domain.VenueRepository {
	return NewVenueRepository(s.q)
}

func (s *Store) Artists() domain.ArtistRepository {
	return NewArtistRepository(s.q)
}

func (s *Store) Shows() domain.ShowRepository {
	return NewShowRepository(s.q)
}

// WithinTx runs fn against a Store bound to a new transaction. Calls made on a Store
// that is already inside a transaction reuse it.
func (s *Store) WithinTx(ctx context.Context, fn func(tx domain.Store) error) (err error) {
	if _, ok := s.q.(*sql.Tx); ok {
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Store{db: s.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
