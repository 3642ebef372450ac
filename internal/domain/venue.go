package domain

import (
	"context"
	"time"
)

// Venue is a bookable location that hosts shows.
// swagger:model Venue
type Venue struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	Description        string    `json:"description"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	Website            string    `json:"website"`
	Genres             []string  `json:"genres"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// VenueRepository defines storage for venues.
type VenueRepository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id int64) (*Venue, error)
	Update(ctx context.Context, v *Venue) error
	// Delete removes the venue. Returns ErrNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
	// ListOrderedByArea returns every venue ordered by city, state, then id.
	ListOrderedByArea(ctx context.Context) ([]*Venue, error)
	// SearchByName returns venues whose name contains term, case-insensitively, ordered by id.
	SearchByName(ctx context.Context, term string) ([]*Venue, error)
	// ListRecent returns the newest venues first.
	ListRecent(ctx context.Context, limit int) ([]*Venue, error)
}

// VenueArea groups the venues sharing a city and state.
type VenueArea struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []*VenueSummary `json:"venues"`
}

// VenueSummary is a venue row in listings and search results.
type VenueSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueDetail is a venue with its shows split around the current time.
type VenueDetail struct {
	Venue              *Venue         `json:"venue"`
	PastShows          []*ShowListing `json:"past_shows"`
	UpcomingShows      []*ShowListing `json:"upcoming_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}

// VenueService defines venue listing, search and lifecycle operations.
type VenueService interface {
	CreateVenue(ctx context.Context, v *Venue) error
	UpdateVenue(ctx context.Context, v *Venue) error
	GetVenue(ctx context.Context, id int64) (*Venue, error)
	// GetVenueDetail returns ErrNotFound when the venue is missing. If only its shows
	// cannot be read, the detail comes back with empty show lists along with the error.
	GetVenueDetail(ctx context.Context, id int64) (*VenueDetail, error)
	ListVenuesByArea(ctx context.Context) ([]*VenueArea, error)
	SearchVenues(ctx context.Context, term string) (*SearchResult[VenueSummary], error)
	ListRecentVenues(ctx context.Context, limit int) ([]*Venue, error)
	// DeleteVenue removes the venue and its shows. Deleting a missing venue is not an error.
	DeleteVenue(ctx context.Context, id int64) error
}
