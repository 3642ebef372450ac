package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"showbooking/internal/domain"
)

type venueService struct {
	store          domain.Store
	now            func() time.Time
	contextTimeout time.Duration
}

func NewVenueService(store domain.Store, timeout time.Duration) domain.VenueService {
	return &venueService{
		store:          store,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *venueService) CreateVenue(ctx context.Context, v *domain.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateListing(v.Name, v.State, v.Genres); err != nil {
		return err
	}
	now := s.now()
	v.CreatedAt = now
	v.UpdatedAt = now
	return wrapErr("create venue", s.store.Venues().Create(ctx, v))
}

func (s *venueService) UpdateVenue(ctx context.Context, v *domain.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateListing(v.Name, v.State, v.Genres); err != nil {
		return err
	}
	v.UpdatedAt = s.now()
	return wrapErr("update venue", s.store.Venues().Update(ctx, v))
}

func (s *venueService) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.store.Venues().GetByID(ctx, id)
	if err != nil {
		return nil, wrapErr("get venue", err)
	}
	return v, nil
}

func (s *venueService) GetVenueDetail(ctx context.Context, id int64) (*domain.VenueDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.store.Venues().GetByID(ctx, id)
	if err != nil {
		return nil, wrapErr("get venue", err)
	}
	detail := &domain.VenueDetail{
		Venue:         v,
		PastShows:     []*domain.ShowListing{},
		UpcomingShows: []*domain.ShowListing{},
	}
	listings, err := s.store.Shows().ListListingsByVenueID(ctx, id)
	if err != nil {
		return detail, wrapErr("list venue shows", err)
	}
	detail.PastShows, detail.UpcomingShows = domain.SplitByTime(listings, s.now())
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

// ListVenuesByArea groups venues by (city, state) in the order the repository returns
// them: areas by city then state, venues within an area by id.
func (s *venueService) ListVenuesByArea(ctx context.Context) ([]*domain.VenueArea, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, err := s.store.Venues().ListOrderedByArea(ctx)
	if err != nil {
		return nil, wrapErr("list venues", err)
	}
	counts, err := s.store.Shows().CountUpcomingByVenue(ctx, idsOf(venues, func(v *domain.Venue) int64 { return v.ID }), s.now())
	if err != nil {
		return nil, wrapErr("count upcoming shows", err)
	}

	areas := make([]*domain.VenueArea, 0)
	var current *domain.VenueArea
	for _, v := range venues {
		if current == nil || current.City != v.City || current.State != v.State {
			current = &domain.VenueArea{City: v.City, State: v.State, Venues: []*domain.VenueSummary{}}
			areas = append(areas, current)
		}
		current.Venues = append(current.Venues, &domain.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return areas, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (*domain.SearchResult[domain.VenueSummary], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	term = strings.TrimSpace(term)
	venues, err := s.store.Venues().SearchByName(ctx, term)
	if err != nil {
		return nil, wrapErr("search venues", err)
	}
	counts, err := s.store.Shows().CountUpcomingByVenue(ctx, idsOf(venues, func(v *domain.Venue) int64 { return v.ID }), s.now())
	if err != nil {
		return nil, wrapErr("count upcoming shows", err)
	}
	data := make([]*domain.VenueSummary, 0, len(venues))
	for _, v := range venues {
		data = append(data, &domain.VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return &domain.SearchResult[domain.VenueSummary]{Term: term, Count: len(data), Data: data}, nil
}

func (s *venueService) ListRecentVenues(ctx context.Context, limit int) ([]*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if limit < 1 {
		limit = recentLimit
	}
	venues, err := s.store.Venues().ListRecent(ctx, limit)
	if err != nil {
		return nil, wrapErr("list recent venues", err)
	}
	return venues, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		if err := tx.Shows().DeleteByVenueID(ctx, id); err != nil {
			return wrapErr("delete venue shows", err)
		}
		if err := tx.Venues().Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return wrapErr("delete venue", err)
		}
		return nil
	})
	return wrapErr("delete venue", err)
}
