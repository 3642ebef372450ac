package services

import (
	"context"
	"time"

	"showbooking/internal/domain"
)

type showService struct {
	store          domain.Store
	now            func() time.Time
	contextTimeout time.Duration
}

func NewShowService(store domain.Store, timeout time.Duration) domain.ShowService {
	return &showService{
		store:          store,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

// CreateShow validates the interval, then checks the venue, locks the artist and
// runs the overlap check against every existing booking before inserting, all in one
// transaction so concurrent bookings of the same artist are serialised.
func (s *showService) CreateShow(ctx context.Context, venueID, artistID int64, start, end time.Time) (*domain.Show, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	candidate := domain.Interval{Start: start, End: end}
	if !candidate.Valid() {
		return nil, domain.ErrInvalidInterval
	}
	if start.Before(s.now()) {
		return nil, domain.ErrStartInPast
	}

	show := domain.NewShow(venueID, artistID, start, end)
	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		if _, err := tx.Venues().GetByID(ctx, venueID); err != nil {
			return wrapErr("get venue", err)
		}
		if _, err := tx.Artists().LockByID(ctx, artistID); err != nil {
			return wrapErr("lock artist", err)
		}
		existing, err := tx.Shows().ListByArtistID(ctx, artistID)
		if err != nil {
			return wrapErr("list artist shows", err)
		}
		booked := make([]domain.Interval, 0, len(existing))
		for _, e := range existing {
			booked = append(booked, e.Interval())
		}
		if !domain.CanBook(booked, candidate) {
			return domain.ErrShowOverlap
		}
		return wrapErr("insert show", tx.Shows().Create(ctx, show))
	})
	if err != nil {
		return nil, wrapErr("create show", err)
	}
	return show, nil
}

func (s *showService) ListShows(ctx context.Context, params domain.PaginationParams) ([]*domain.ShowListing, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	listings, total, err := s.store.Shows().List(ctx, params.Normalize())
	if err != nil {
		return nil, 0, wrapErr("list shows", err)
	}
	return listings, total, nil
}
