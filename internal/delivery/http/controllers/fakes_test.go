package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"showbooking/internal/delivery/http/helpers"
	"showbooking/internal/delivery/http/views"
	"showbooking/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func newTestPages(t *testing.T) *Pages {
	t.Helper()
	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	return NewPages(testLogger, renderer, helpers.NewFlasher("flash"))
}

func postForm(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// serve routes req through a mux holding the single pattern, so PathValue works.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// flashOf decodes the flash set on rec.
func flashOf(t *testing.T, rec *httptest.ResponseRecorder) *helpers.Flash {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	f := helpers.NewFlasher("flash").Pop(httptest.NewRecorder(), req)
	require.NotNil(t, f, "expected a flash cookie")
	return f
}

// fakeVenueService implements domain.VenueService for handler tests.
type fakeVenueService struct {
	venues      map[int64]*domain.Venue
	detail      *domain.VenueDetail
	detailErr   error
	areas       []*domain.VenueArea
	search      *domain.SearchResult[domain.VenueSummary]
	err         error
	lastCreated *domain.Venue
	lastUpdated *domain.Venue
	lastDeleted int64
	lastTerm    string
}

func (f *fakeVenueService) CreateVenue(ctx context.Context, v *domain.Venue) error {
	f.lastCreated = v
	if f.err != nil {
		return f.err
	}
	v.ID = 1
	return nil
}

func (f *fakeVenueService) UpdateVenue(ctx context.Context, v *domain.Venue) error {
	f.lastUpdated = v
	if f.err != nil {
		return f.err
	}
	if _, ok := f.venues[v.ID]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (f *fakeVenueService) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.venues[id]; ok {
		return v, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeVenueService) GetVenueDetail(ctx context.Context, id int64) (*domain.VenueDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil || f.detail.Venue.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.detail, f.detailErr
}

func (f *fakeVenueService) ListVenuesByArea(ctx context.Context) ([]*domain.VenueArea, error) {
	return f.areas, f.err
}

func (f *fakeVenueService) SearchVenues(ctx context.Context, term string) (*domain.SearchResult[domain.VenueSummary], error) {
	f.lastTerm = term
	if f.err != nil {
		return nil, f.err
	}
	return f.search, nil
}

func (f *fakeVenueService) ListRecentVenues(ctx context.Context, limit int) ([]*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Venue, 0, len(f.venues))
	for _, v := range f.venues {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVenueService) DeleteVenue(ctx context.Context, id int64) error {
	f.lastDeleted = id
	return f.err
}

// fakeArtistService implements domain.ArtistService for handler tests.
type fakeArtistService struct {
	artists     map[int64]*domain.Artist
	list        []*domain.Artist
	total       int
	detail      *domain.ArtistDetail
	detailErr   error
	search      *domain.SearchResult[domain.ArtistSummary]
	err         error
	lastParams  domain.PaginationParams
	lastCreated *domain.Artist
	lastUpdated *domain.Artist
	lastDeleted int64
}

func (f *fakeArtistService) CreateArtist(ctx context.Context, a *domain.Artist) error {
	f.lastCreated = a
	if f.err != nil {
		return f.err
	}
	a.ID = 1
	return nil
}

func (f *fakeArtistService) UpdateArtist(ctx context.Context, a *domain.Artist) error {
	f.lastUpdated = a
	if f.err != nil {
		return f.err
	}
	if _, ok := f.artists[a.ID]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (f *fakeArtistService) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	if f.err != nil {
		return nil, f.err
	}
	if a, ok := f.artists[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeArtistService) GetArtistDetail(ctx context.Context, id int64) (*domain.ArtistDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil || f.detail.Artist.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.detail, f.detailErr
}

func (f *fakeArtistService) ListArtists(ctx context.Context, params domain.PaginationParams) ([]*domain.Artist, int, error) {
	f.lastParams = params
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.list, f.total, nil
}

func (f *fakeArtistService) SearchArtists(ctx context.Context, term string) (*domain.SearchResult[domain.ArtistSummary], error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.search, nil
}

func (f *fakeArtistService) ListRecentArtists(ctx context.Context, limit int) ([]*domain.Artist, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeArtistService) DeleteArtist(ctx context.Context, id int64) error {
	f.lastDeleted = id
	return f.err
}

// fakeShowService implements domain.ShowService for handler tests.
type fakeShowService struct {
	createErr error
	listErr   error
	listings  []*domain.ShowListing
	total     int
	lastVenue int64
	lastArt   int64
	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeShowService) CreateShow(ctx context.Context, venueID, artistID int64, start, end time.Time) (*domain.Show, error) {
	f.lastVenue, f.lastArt, f.lastStart, f.lastEnd = venueID, artistID, start, end
	if f.createErr != nil {
		return nil, f.createErr
	}
	s := domain.NewShow(venueID, artistID, start, end)
	s.ID = 1
	return s, nil
}

func (f *fakeShowService) ListShows(ctx context.Context, params domain.PaginationParams) ([]*domain.ShowListing, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listings, f.total, nil
}
