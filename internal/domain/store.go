package domain

import "context"

// Store hands out repositories bound to one database handle. Inside WithinTx the
// repositories of the Store passed to fn share a single transaction.
type Store interface {
	Venues() VenueRepository
	Artists() ArtistRepository
	Shows() ShowRepository
	// WithinTx runs fn in a transaction, committing when fn returns nil and rolling back otherwise.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}

// SearchResult is the outcome of a name search.
type SearchResult[T any] struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
	Data  []*T   `json:"data"`
}
