package postgres

import (
	"context"

	"showbooking/internal/domain"
)

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link,
		seeking_venue, seeking_description, website, created_at, updated_at`

type artistRepository struct {
	DB DBTX
}

func NewArtistRepository(db DBTX) domain.ArtistRepository {
	return &artistRepository{
		DB: db,
	}
}

func scanArtist(row rowScanner) (*domain.Artist, error) {
	a := &domain.Artist{}
	var genres string
	if err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres, &a.ImageLink, &a.FacebookLink,
		&a.SeekingVenue, &a.SeekingDescription, &a.Website, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Genres = splitGenres(genres)
	return a, nil
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) error {
	query := `
		INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link,
			seeking_venue, seeking_description, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		a.Name, a.City, a.State, a.Phone, joinGenres(a.Genres), a.ImageLink, a.FacebookLink,
		a.SeekingVenue, a.SeekingDescription, a.Website, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
}

func (r *artistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`
	a, err := scanArtist(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *artistRepository) LockByID(ctx context.Context, id int64) (*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1 FOR UPDATE`
	a, err := scanArtist(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *artistRepository) Update(ctx context.Context, a *domain.Artist) error {
	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5, image_link = $6, facebook_link = $7,
			seeking_venue = $8, seeking_description = $9, website = $10, updated_at = $11
		WHERE id = $12
	`
	result, err := r.DB.ExecContext(ctx, query,
		a.Name, a.City, a.State, a.Phone, joinGenres(a.Genres), a.ImageLink, a.FacebookLink,
		a.SeekingVenue, a.SeekingDescription, a.Website, a.UpdatedAt, a.ID,
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

func (r *artistRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *artistRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Artist, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM artists`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY id LIMIT $1 OFFSET $2`
	artists, err := r.list(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	return artists, total, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE name ILIKE $1 ESCAPE '\' ORDER BY id`
	return r.list(ctx, query, likePattern(term))
}

func (r *artistRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY id DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *artistRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Artist, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return artists, nil
}
