package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"showbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var venueRowColumns = []string{
	"id", "name", "city", "state", "address", "phone", "image_link", "facebook_link", "description",
	"seeking_talent", "seeking_description", "website", "genres", "created_at", "updated_at",
}

var fixedTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func venueRow(rows *sqlmock.Rows, id int64, name, city, state, genres string) *sqlmock.Rows {
	return rows.AddRow(id, name, city, state, "1015 Folsom Street", "123-123-1234",
		"https://img.example/v.jpg", "https://facebook.com/v", "", true, "Looking for local bands",
		"https://venue.example", genres, fixedTime, fixedTime)
}

func TestVenueRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		venue   *domain.Venue
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name: "success",
			venue: &domain.Venue{
				Name:      "The Musical Hop",
				City:      "San Francisco",
				State:     "CA",
				Genres:    []string{"Jazz", "Reggae"},
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO venues \(name, city, state`).
					WithArgs("The Musical Hop", "San Francisco", "CA", "", "", "", "", "",
						false, "", "", "Jazz,Reggae", fixedTime, fixedTime).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			wantID: 7,
		},
		{
			name:  "db error",
			venue: &domain.Venue{Name: "Park Square Live Music & Coffee"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO venues`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewVenueRepository(db)
			err = repo.Create(ctx, tt.venue)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.venue.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVenueRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		mock       func(mock sqlmock.Sqlmock)
		wantGenres []string
		wantErr    error
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM venues WHERE id = \$1`).
					WithArgs(int64(1)).
					WillReturnRows(venueRow(sqlmock.NewRows(venueRowColumns), 1, "The Musical Hop", "San Francisco", "CA", "Jazz,Reggae,Swing"))
			},
			wantGenres: []string{"Jazz", "Reggae", "Swing"},
		},
		{
			name: "empty genres",
			id:   2,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM venues WHERE id = \$1`).
					WithArgs(int64(2)).
					WillReturnRows(venueRow(sqlmock.NewRows(venueRowColumns), 2, "The Dueling Pianos Bar", "New York", "NY", ""))
			},
			wantGenres: []string{},
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM venues WHERE id = \$1`).
					WithArgs(int64(99)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewVenueRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			require.NoError(t, mock.ExpectationsWereMet())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.id, got.ID)
			require.Equal(t, tt.wantGenres, got.Genres)
			require.True(t, got.SeekingTalent)
		})
	}
}

func TestVenueRepository_Update(t *testing.T) {
	ctx := context.Background()
	v := &domain.Venue{ID: 3, Name: "Park Square", Genres: []string{"Rock n Roll"}, UpdatedAt: fixedTime}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE venues`).
			WithArgs("Park Square", "", "", "", "", "", "", "", false, "", "", "Rock n Roll", fixedTime, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, NewVenueRepository(db).Update(ctx, v))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE venues`).WillReturnResult(sqlmock.NewResult(0, 0))
		err = NewVenueRepository(db).Update(ctx, v)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVenueRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM venues WHERE id = \$1`).
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   42,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM venues WHERE id = \$1`).
					WithArgs(int64(42)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name: "db error",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM venues WHERE id = \$1`).
					WithArgs(int64(1)).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewVenueRepository(db).Delete(ctx, tt.id)
			require.NoError(t, mock.ExpectationsWereMet())
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, tt.isNotFound, errors.Is(err, domain.ErrNotFound))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVenueRepository_ListOrderedByArea(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(venueRowColumns)
	venueRow(rows, 2, "The Dueling Pianos Bar", "New York", "NY", "Classical")
	venueRow(rows, 1, "The Musical Hop", "San Francisco", "CA", "Jazz")
	venueRow(rows, 3, "Park Square Live Music & Coffee", "San Francisco", "CA", "Folk")
	mock.ExpectQuery(`FROM venues ORDER BY city, state, id`).WillReturnRows(rows)

	got, err := NewVenueRepository(db).ListOrderedByArea(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []int64{2, 1, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepository_SearchByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM venues WHERE name ILIKE \$1`).
		WithArgs(`%100\%%`).
		WillReturnRows(sqlmock.NewRows(venueRowColumns))

	got, err := NewVenueRepository(db).SearchByName(context.Background(), "100%")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepository_ListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(venueRowColumns)
	venueRow(rows, 3, "Park Square", "San Francisco", "CA", "")
	mock.ExpectQuery(`FROM venues ORDER BY id DESC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(rows)

	got, err := NewVenueRepository(db).ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
