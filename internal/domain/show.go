package domain

import (
	"context"
	"time"
)

// Show pairs one venue and one artist over [StartTime, EndTime). Shows are immutable.
// swagger:model Show
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// NewShow returns a Show for the given pairing. ID is set by the repository on create.
func NewShow(venueID, artistID int64, start, end time.Time) *Show {
	return &Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: start,
		EndTime:   end,
	}
}

// Interval returns the show's booked time range.
func (s *Show) Interval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// ShowListing is a show joined with the names and images of its venue and artist.
type ShowListing struct {
	ShowID          int64     `json:"show_id"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
}

// ShowRepository defines storage for shows and the show-derived aggregates.
type ShowRepository interface {
	Create(ctx context.Context, s *Show) error
	ListByArtistID(ctx context.Context, artistID int64) ([]*Show, error)
	DeleteByVenueID(ctx context.Context, venueID int64) error
	DeleteByArtistID(ctx context.Context, artistID int64) error
	// CountUpcomingByVenue counts, per venue id, shows starting strictly after now.
	// Venues without upcoming shows are absent from the map.
	CountUpcomingByVenue(ctx context.Context, venueIDs []int64, now time.Time) (map[int64]int, error)
	// CountUpcomingByArtist counts, per artist id, shows starting strictly after now.
	CountUpcomingByArtist(ctx context.Context, artistIDs []int64, now time.Time) (map[int64]int, error)
	ListListingsByVenueID(ctx context.Context, venueID int64) ([]*ShowListing, error)
	ListListingsByArtistID(ctx context.Context, artistID int64) ([]*ShowListing, error)
	// List returns one page of listings ordered by venue id then artist id, plus the total count.
	List(ctx context.Context, params PaginationParams) ([]*ShowListing, int, error)
}

// ShowService defines show booking and listing.
type ShowService interface {
	// CreateShow books the artist at the venue over [start, end).
	// Returns ErrInvalidInterval, ErrStartInPast, ErrNotFound or ErrShowOverlap on rejection.
	CreateShow(ctx context.Context, venueID, artistID int64, start, end time.Time) (*Show, error)
	ListShows(ctx context.Context, params PaginationParams) ([]*ShowListing, int, error)
}

// SplitByTime partitions listings into those starting at or before now and those
// starting strictly after now. Order within each side is preserved.
func SplitByTime(listings []*ShowListing, now time.Time) (past, upcoming []*ShowListing) {
	past = []*ShowListing{}
	upcoming = []*ShowListing{}
	for _, l := range listings {
		if l.StartTime.After(now) {
			upcoming = append(upcoming, l)
		} else {
			past = append(past, l)
		}
	}
	return past, upcoming
}
