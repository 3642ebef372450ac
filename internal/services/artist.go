package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"showbooking/internal/domain"
)

type artistService struct {
	store          domain.Store
	now            func() time.Time
	contextTimeout time.Duration
}

func NewArtistService(store domain.Store, timeout time.Duration) domain.ArtistService {
	return &artistService{
		store:          store,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *artistService) CreateArtist(ctx context.Context, a *domain.Artist) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateListing(a.Name, a.State, a.Genres); err != nil {
		return err
	}
	now := s.now()
	a.CreatedAt = now
	a.UpdatedAt = now
	return wrapErr("create artist", s.store.Artists().Create(ctx, a))
}

func (s *artistService) UpdateArtist(ctx context.Context, a *domain.Artist) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateListing(a.Name, a.State, a.Genres); err != nil {
		return err
	}
	a.UpdatedAt = s.now()
	return wrapErr("update artist", s.store.Artists().Update(ctx, a))
}

func (s *artistService) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.store.Artists().GetByID(ctx, id)
	if err != nil {
		return nil, wrapErr("get artist", err)
	}
	return a, nil
}

func (s *artistService) GetArtistDetail(ctx context.Context, id int64) (*domain.ArtistDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.store.Artists().GetByID(ctx, id)
	if err != nil {
		return nil, wrapErr("get artist", err)
	}
	detail := &domain.ArtistDetail{
		Artist:        a,
		PastShows:     []*domain.ShowListing{},
		UpcomingShows: []*domain.ShowListing{},
	}
	listings, err := s.store.Shows().ListListingsByArtistID(ctx, id)
	if err != nil {
		return detail, wrapErr("list artist shows", err)
	}
	detail.PastShows, detail.UpcomingShows = domain.SplitByTime(listings, s.now())
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

func (s *artistService) ListArtists(ctx context.Context, params domain.PaginationParams) ([]*domain.Artist, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	artists, total, err := s.store.Artists().List(ctx, params.Normalize())
	if err != nil {
		return nil, 0, wrapErr("list artists", err)
	}
	return artists, total, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*domain.SearchResult[domain.ArtistSummary], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	term = strings.TrimSpace(term)
	artists, err := s.store.Artists().SearchByName(ctx, term)
	if err != nil {
		return nil, wrapErr("search artists", err)
	}
	counts, err := s.store.Shows().CountUpcomingByArtist(ctx, idsOf(artists, func(a *domain.Artist) int64 { return a.ID }), s.now())
	if err != nil {
		return nil, wrapErr("count upcoming shows", err)
	}
	data := make([]*domain.ArtistSummary, 0, len(artists))
	for _, a := range artists {
		data = append(data, &domain.ArtistSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return &domain.SearchResult[domain.ArtistSummary]{Term: term, Count: len(data), Data: data}, nil
}

func (s *artistService) ListRecentArtists(ctx context.Context, limit int) ([]*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if limit < 1 {
		limit = recentLimit
	}
	artists, err := s.store.Artists().ListRecent(ctx, limit)
	if err != nil {
		return nil, wrapErr("list recent artists", err)
	}
	return artists, nil
}

func (s *artistService) DeleteArtist(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		if err := tx.Shows().DeleteByArtistID(ctx, id); err != nil {
			return wrapErr("delete artist shows", err)
		}
		if err := tx.Artists().Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return wrapErr("delete artist", err)
		}
		return nil
	})
	return wrapErr("delete artist", err)
}
