package domain

import (
	"context"
	"time"
)

// Artist is a performer who can be booked into shows.
// swagger:model Artist
type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	Website            string    `json:"website"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ArtistRepository defines storage for artists.
type ArtistRepository interface {
	Create(ctx context.Context, a *Artist) error
	GetByID(ctx context.Context, id int64) (*Artist, error)
	// LockByID loads the artist and holds a row lock until the surrounding transaction ends.
	LockByID(ctx context.Context, id int64) (*Artist, error)
	Update(ctx context.Context, a *Artist) error
	// Delete removes the artist. Returns ErrNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
	// List returns one page of artists ordered by id, plus the total count.
	List(ctx context.Context, params PaginationParams) ([]*Artist, int, error)
	SearchByName(ctx context.Context, term string) ([]*Artist, error)
	ListRecent(ctx context.Context, limit int) ([]*Artist, error)
}

// ArtistSummary is an artist row in search results.
type ArtistSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistDetail is an artist with its shows split around the current time.
type ArtistDetail struct {
	Artist             *Artist        `json:"artist"`
	PastShows          []*ShowListing `json:"past_shows"`
	UpcomingShows      []*ShowListing `json:"upcoming_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}

// ArtistService defines artist listing, search and lifecycle operations.
type ArtistService interface {
	CreateArtist(ctx context.Context, a *Artist) error
	UpdateArtist(ctx context.Context, a *Artist) error
	GetArtist(ctx context.Context, id int64) (*Artist, error)
	// GetArtistDetail returns ErrNotFound when the artist is missing. If only its shows
	// cannot be read, the detail comes back with empty show lists along with the error.
	GetArtistDetail(ctx context.Context, id int64) (*ArtistDetail, error)
	ListArtists(ctx context.Context, params PaginationParams) ([]*Artist, int, error)
	SearchArtists(ctx context.Context, term string) (*SearchResult[ArtistSummary], error)
	ListRecentArtists(ctx context.Context, limit int) ([]*Artist, error)
	// DeleteArtist removes the artist and its shows. Deleting a missing artist is not an error.
	DeleteArtist(ctx context.Context, id int64) error
}
