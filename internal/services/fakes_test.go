package services

import (
	"context"
	"maps"
	"sort"
	"strings"
	"time"

	"showbooking/internal/domain"
)

// fakeStore is an in-memory domain.Store for tests. WithinTx snapshots the tables and
// restores them when fn fails.
type fakeStore struct {
	venues  map[int64]*domain.Venue
	artists map[int64]*domain.Artist
	shows   map[int64]*domain.Show
	nextID  int64
	err     error // if set, every repository call returns this error
	txErr   error // if set, WithinTx returns this error without calling fn
	txCalls int
	locked  []int64

	listingsErr error // if set, only the show listing reads fail
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		venues:  make(map[int64]*domain.Venue),
		artists: make(map[int64]*domain.Artist),
		shows:   make(map[int64]*domain.Show),
		nextID:  1,
	}
}

func (f *fakeStore) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) addVenue(name, city, state string) *domain.Venue {
	v := &domain.Venue{ID: f.id(), Name: name, City: city, State: state, Genres: []string{"Jazz"}}
	f.venues[v.ID] = v
	return v
}

func (f *fakeStore) addArtist(name string) *domain.Artist {
	a := &domain.Artist{ID: f.id(), Name: name, City: "San Francisco", State: "CA", Genres: []string{"Jazz"}}
	f.artists[a.ID] = a
	return a
}

func (f *fakeStore) addShow(venueID, artistID int64, start, end time.Time) *domain.Show {
	s := &domain.Show{ID: f.id(), VenueID: venueID, ArtistID: artistID, StartTime: start, EndTime: end}
	f.shows[s.ID] = s
	return s
}

func (f *fakeStore) Venues() domain.VenueRepository   { return fakeVenueRepo{f} }
func (f *fakeStore) Artists() domain.ArtistRepository { return fakeArtistRepo{f} }
func (f *fakeStore) Shows() domain.ShowRepository     { return fakeShowRepo{f} }

func (f *fakeStore) WithinTx(ctx context.Context, fn func(tx domain.Store) error) error {
	f.txCalls++
	if f.txErr != nil {
		return f.txErr
	}
	venues, artists, shows, nextID := maps.Clone(f.venues), maps.Clone(f.artists), maps.Clone(f.shows), f.nextID
	if err := fn(f); err != nil {
		f.venues, f.artists, f.shows, f.nextID = venues, artists, shows, nextID
		return err
	}
	return nil
}

type fakeVenueRepo struct{ f *fakeStore }

func (r fakeVenueRepo) Create(ctx context.Context, v *domain.Venue) error {
	if r.f.err != nil {
		return r.f.err
	}
	v.ID = r.f.id()
	r.f.venues[v.ID] = v
	return nil
}

func (r fakeVenueRepo) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	if r.f.err != nil {
		return nil, r.f.err
	}
	if v, ok := r.f.venues[id]; ok {
		return v, nil
	}
	return nil, domain.ErrNotFound
}

func (r fakeVenueRepo) Update(ctx context.Context, v *domain.Venue) error {
	if r.f.err != nil {
		return r.f.err
	}
	if _, ok := r.f.venues[v.ID]; !ok {
		return domain.ErrNotFound
	}
	r.f.venues[v.ID] = v
	return nil
}

func (r fakeVenueRepo) Delete(ctx context.Context, id int64) error {
	if r.f.err != nil {
		return r.f.err
	}
	if _, ok := r.f.venues[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.f.venues, id)
	return nil
}

func (r fakeVenueRepo) ListOrderedByArea(ctx context.Context) ([]*domain.Venue, error) {
	if r.f.err != nil {
		return nil, r.f.err
	}
	out := sortedByID(r.f.venues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		return out[i].State < out[j].State
	})
	return out, nil
}

func (r fakeVenueRepo) SearchByName(ctx context.Context, term string) ([]*domain.Venue, error) {
	if r.f.err != nil {
		return nil, r.f.err
	}
	out := make([]*domain.Venue, 0)
	for _, v := range sortedByID(r.f.venues) {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r fakeVenueRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Venue, error) {
	if r.f.err != nil {
		return nil, r.f.err
	}
	out := sortedByID(r.f.venues)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeArtistRepo struct{ f *fakeStore }

func (r fakeArtistRepo) Create(ctx context.Context, a *domain.Artist) error {
	if r.f.err != nil {
		return r.f.err
	}
	a.ID = r.f.id()
	r.f.artists[a.ID] = a
	return nil
}

func (r fakeArtistRepo) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	if r.f.err != nil {
		return nil, r.f.err
	}
	if a, ok := r.f.artists[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (r fakeArtistRepo) LockByID(ctx context.Context, id int64) (*domain.Artist, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.f.locked = append(r.f.locked, id)
	return a, nil
}

func (r fakeArtistRepo) Update(ctx context.Context, a *domain.Artist) error {
	if r.f.err != nil {
		return r.f.err
	}
	if _, ok := r.f.artists[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.f.artists[a.ID] = a
	return nil
}

func (r fakeArtistRepo) Delete(ctx context.Context, id int64) error {
	if r.f.err != nil {
		return r.f.err
	}
	if _, ok := r.f.artists[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.f.artists, id)
	return nil
}

func (r fakeArtistRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Artist, int, error) {
	if r.f.err != nil {
		return nil, 0, r.f.err
	}
	all := sortedByID(r.f.artists)
	return page(all, params), len(all), nil
}

func (r fakeArtistRepo) SearchByName(ctx context.Context, term string) ([]*domain.Artist, error) {
	if r.f.err != nil {
		return nil, r.f.err
	}
	out := make([]*domain.Artist, 0)
	for _, a := range sortedByID(r.f.artists) {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r fakeArtistRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Artist, error) {
	if r.f.err != nil {
		return nil, r.f.err
	}
	out := sortedByID(r.f.artists)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeShowRepo struct{ f *fakeStore }

func (r fakeShowRepo) Create(ctx context.Context, s *domain.Show) error {
	if r.f.err != nil {
		return r.f.err
	}
	if _, ok := r.f.venues[s.VenueID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.f.artists[s.ArtistID]; !ok {
		return domain.ErrNotFound
	}
	s.ID = r.f.id()
	r.f.shows[s.ID] = s
	return nil
}

func (r fakeShowRepo) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.Show, error) {
	if r.f.err != nil {
		return nil, r.f.err
	}
	out := make([]*domain.Show, 0)
	for _, s := range sortedByID(r.f.shows) {
		if s.ArtistID == artistID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r fakeShowRepo) DeleteByVenueID(ctx context.Context, venueID int64) error {
	if r.f.err != nil {
		return r.f.err
	}
	for id, s := range r.f.shows {
		if s.VenueID == venueID {
			delete(r.f.shows, id)
		}
	}
	return nil
}

func (r fakeShowRepo) DeleteByArtistID(ctx context.Context, artistID int64) error {
	if r.f.err != nil {
		return r.f.err
	}
	for id, s := range r.f.shows {
		if s.ArtistID == artistID {
			delete(r.f.shows, id)
		}
	}
	return nil
}

func (r fakeShowRepo) CountUpcomingByVenue(ctx context.Context, venueIDs []int64, now time.Time) (map[int64]int, error) {
	return r.countUpcoming(venueIDs, now, func(s *domain.Show) int64 { return s.VenueID })
}

func (r fakeShowRepo) CountUpcomingByArtist(ctx context.Context, artistIDs []int64, now time.Time) (map[int64]int, error) {
	return r.countUpcoming(artistIDs, now, func(s *domain.Show) int64 { return s.ArtistID })
}

func (r fakeShowRepo) countUpcoming(ids []int64, now time.Time, key func(*domain.Show) int64) (map[int64]int, error) {
	if r.f.err != nil {
		return nil, r.f.err
	}
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	counts := make(map[int64]int)
	for _, s := range r.f.shows {
		if want[key(s)] && s.StartTime.After(now) {
			counts[key(s)]++
		}
	}
	return counts, nil
}

func (r fakeShowRepo) ListListingsByVenueID(ctx context.Context, venueID int64) ([]*domain.ShowListing, error) {
	return r.listings(func(s *domain.Show) bool { return s.VenueID == venueID })
}

func (r fakeShowRepo) ListListingsByArtistID(ctx context.Context, artistID int64) ([]*domain.ShowListing, error) {
	return r.listings(func(s *domain.Show) bool { return s.ArtistID == artistID })
}

func (r fakeShowRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ShowListing, int, error) {
	all, err := r.listings(func(*domain.Show) bool { return true })
	if err != nil {
		return nil, 0, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].VenueID != all[j].VenueID {
			return all[i].VenueID < all[j].VenueID
		}
		return all[i].ArtistID < all[j].ArtistID
	})
	return page(all, params), len(all), nil
}

func (r fakeShowRepo) listings(match func(*domain.Show) bool) ([]*domain.ShowListing, error) {
	if r.f.err != nil {
		return nil, r.f.err
	}
	if r.f.listingsErr != nil {
		return nil, r.f.listingsErr
	}
	out := make([]*domain.ShowListing, 0)
	for _, s := range sortedByID(r.f.shows) {
		if !match(s) {
			continue
		}
		v, a := r.f.venues[s.VenueID], r.f.artists[s.ArtistID]
		out = append(out, &domain.ShowListing{
			ShowID:          s.ID,
			VenueID:         v.ID,
			VenueName:       v.Name,
			VenueImageLink:  v.ImageLink,
			ArtistID:        a.ID,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

type identified interface {
	*domain.Venue | *domain.Artist | *domain.Show
}

func idOf[T identified](v T) int64 {
	switch x := any(v).(type) {
	case *domain.Venue:
		return x.ID
	case *domain.Artist:
		return x.ID
	case *domain.Show:
		return x.ID
	}
	return 0
}

func sortedByID[T identified](m map[int64]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return idOf(out[i]) < idOf(out[j]) })
	return out
}

func page[T any](all []T, params domain.PaginationParams) []T {
	start := params.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.Limit()
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
