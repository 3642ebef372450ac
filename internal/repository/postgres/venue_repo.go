package postgres

import (
	"context"

	"showbooking/internal/domain"
)

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link, description,
		seeking_talent, seeking_description, website, genres, created_at, updated_at`

type venueRepository struct {
	DB DBTX
}

func NewVenueRepository(db DBTX) domain.VenueRepository {
	return &venueRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (*domain.Venue, error) {
	v := &domain.Venue{}
	var genres string
	if err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink, &v.FacebookLink, &v.Description,
		&v.SeekingTalent, &v.SeekingDescription, &v.Website, &genres, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.Genres = splitGenres(genres)
	return v, nil
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `
		INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link, description,
			seeking_talent, seeking_description, website, genres, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink, v.Description,
		v.SeekingTalent, v.SeekingDescription, v.Website, joinGenres(v.Genres), v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
}

func (r *venueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`
	v, err := scanVenue(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (r *venueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, image_link = $6, facebook_link = $7,
			description = $8, seeking_talent = $9, seeking_description = $10, website = $11, genres = $12,
			updated_at = $13
		WHERE id = $14
	`
	result, err := r.DB.ExecContext(ctx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink,
		v.Description, v.SeekingTalent, v.SeekingDescription, v.Website, joinGenres(v.Genres),
		v.UpdatedAt, v.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *venueRepository) ListOrderedByArea(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY city, state, id`
	return r.list(ctx, query)
}

func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE name ILIKE $1 ESCAPE '\' ORDER BY id`
	return r.list(ctx, query, likePattern(term))
}

func (r *venueRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *venueRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Venue, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return venues, nil
}
