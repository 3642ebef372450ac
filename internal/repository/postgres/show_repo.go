package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"

	"showbooking/internal/domain"
)

const listingSelect = `
		SELECT s.id, v.id, v.name, v.image_link, a.id, a.name, a.image_link, s.start_time, s.end_time
		FROM shows s
		INNER JOIN venues v ON v.id = s.venue_id
		INNER JOIN artists a ON a.id = s.artist_id
	`

type showRepository struct {
	DB DBTX
}

func NewShowRepository(db DBTX) domain.ShowRepository {
	return &showRepository{
		DB: db,
	}
}

func (r *showRepository) Create(ctx context.Context, s *domain.Show) error {
	query := `
		INSERT INTO shows (venue_id, artist_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, s.VenueID, s.ArtistID, s.StartTime, s.EndTime).Scan(&s.ID); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *showRepository) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.Show, error) {
	query := `
		SELECT id, venue_id, artist_id, start_time, end_time
		FROM shows
		WHERE artist_id = $1
		ORDER BY start_time, id
	`
	rows, err := r.DB.QueryContext(ctx, query, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	shows := make([]*domain.Show, 0)
	for rows.Next() {
		s := &domain.Show{}
		if err := rows.Scan(&s.ID, &s.VenueID, &s.ArtistID, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		shows = append(shows, s)
	}
	return shows, rows.Err()
}

func (r *showRepository) DeleteByVenueID(ctx context.Context, venueID int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = $1`, venueID)
	return err
}

func (r *showRepository) DeleteByArtistID(ctx context.Context, artistID int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = $1`, artistID)
	return err
}

func (r *showRepository) CountUpcomingByVenue(ctx context.Context, venueIDs []int64, now time.Time) (map[int64]int, error) {
	query := `
		SELECT venue_id, COUNT(*)
		FROM shows
		WHERE venue_id = ANY($1) AND start_time > $2
		GROUP BY venue_id
	`
	return r.countUpcoming(ctx, query, venueIDs, now)
}

func (r *showRepository) CountUpcomingByArtist(ctx context.Context, artistIDs []int64, now time.Time) (map[int64]int, error) {
	query := `
		SELECT artist_id, COUNT(*)
		FROM shows
		WHERE artist_id = ANY($1) AND start_time > $2
		GROUP BY artist_id
	`
	return r.countUpcoming(ctx, query, artistIDs, now)
}

func (r *showRepository) countUpcoming(ctx context.Context, query string, ids []int64, now time.Time) (map[int64]int, error) {
	counts := make(map[int64]int)
	if len(ids) == 0 {
		return counts, nil
	}
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids), now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *showRepository) ListListingsByVenueID(ctx context.Context, venueID int64) ([]*domain.ShowListing, error) {
	query := listingSelect + `WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`
	return r.listings(ctx, query, venueID)
}

func (r *showRepository) ListListingsByArtistID(ctx context.Context, artistID int64) ([]*domain.ShowListing, error) {
	query := listingSelect + `WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`
	return r.listings(ctx, query, artistID)
}

func (r *showRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ShowListing, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := listingSelect + `ORDER BY s.venue_id, s.artist_id, s.start_time LIMIT $1 OFFSET $2`
	listings, err := r.listings(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *showRepository) listings(ctx context.Context, query string, args ...any) ([]*domain.ShowListing, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.ShowListing, 0)
	for rows.Next() {
		l := &domain.ShowListing{}
		if err := rows.Scan(
			&l.ShowID, &l.VenueID, &l.VenueName, &l.VenueImageLink,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime, &l.EndTime,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
