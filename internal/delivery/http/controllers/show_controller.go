package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"showbooking/internal/delivery/http/helpers"
	"showbooking/internal/delivery/http/views"
	"showbooking/internal/domain"
	"showbooking/internal/monitoring"
)

// Flash messages for each way a booking can fail.
const (
	msgShowCreated      = "Show was successfully listed!"
	msgShowOverlap      = "Show could not be listed: the artist is already booked at that time."
	msgShowInterval     = "Show could not be listed: the end time must be after the start time."
	msgShowStartInPast  = "Show could not be listed: the start time is in the past."
	msgShowMissingParty = "Show could not be listed: the venue or artist does not exist."
	msgShowFailed       = "An error occurred. Show could not be listed."
)

type ShowController struct {
	*Pages
	Service domain.ShowService
}

func NewShowController(pages *Pages, svc domain.ShowService) *ShowController {
	return &ShowController{Pages: pages, Service: svc}
}

// List godoc
// @Summary List shows
// @Description Shows ordered by venue then artist, with venue and artist names, paginated.
// @Tags shows
// @Produce html
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Items per page (max 100)" default(20)
// @Success 200 {string} string "HTML page"
// @Router /shows [get]
func (c *ShowController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	page := &views.Page{Title: "Shows"}
	shows, total, err := c.Service.ListShows(r.Context(), params)
	if err != nil {
		c.logFailure(r, err)
		page.Warning = readWarning
		shows, total = []*domain.ShowListing{}, 0
	}
	page.Data = map[string]any{
		"Shows": shows,
		"Meta":  helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	}
	c.render(w, r, http.StatusOK, "shows", page)
}

// CreateForm godoc
// @Summary New show form
// @Tags shows
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /shows/create [get]
func (c *ShowController) CreateForm(w http.ResponseWriter, r *http.Request) {
	c.renderForm(w, r, http.StatusOK, nil, nil)
}

// Create godoc
// @Summary Book a show
// @Description Books the artist at the venue. Rejected when the end is not after the start, the start is in the past, the venue or artist is missing, or the artist already has an overlapping show.
// @Tags shows
// @Accept x-www-form-urlencoded
// @Produce html
// @Param artist_id formData int true "Artist ID"
// @Param venue_id formData int true "Venue ID"
// @Param start_time formData string true "Start, e.g. 2026-05-21 21:30:00"
// @Param end_time formData string true "End, e.g. 2026-05-21 23:00:00"
// @Success 303 {string} string "redirect to / on success, /shows/create on rejection"
// @Failure 400 {string} string "form re-rendered with field errors"
// @Router /shows/create [post]
func (c *ShowController) Create(w http.ResponseWriter, r *http.Request) {
	var form ShowForm
	if err := helpers.DecodeForm(r, &form); err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			c.serverError(w, r, err)
			return
		}
		monitoring.TrackBooking(monitoring.BookingRejected)
		c.renderForm(w, r, http.StatusBadRequest, r.PostForm, ve.Fields)
		return
	}

	_, err := c.Service.CreateShow(r.Context(), form.VenueID, form.ArtistID, form.StartTime, form.EndTime)
	if err == nil {
		monitoring.TrackBooking(monitoring.BookingCreated)
		c.Flash.Redirect(w, r, "/", helpers.FlashSuccess, msgShowCreated)
		return
	}

	msg, result := msgShowFailed, monitoring.BookingRejected
	switch {
	case errors.Is(err, domain.ErrShowOverlap):
		msg, result = msgShowOverlap, monitoring.BookingOverlap
	case errors.Is(err, domain.ErrInvalidInterval):
		msg = msgShowInterval
	case errors.Is(err, domain.ErrStartInPast):
		msg = msgShowStartInPast
	case errors.Is(err, domain.ErrNotFound):
		msg = msgShowMissingParty
	default:
		result = monitoring.BookingFailed
		c.logFailure(r, err)
	}
	monitoring.TrackBooking(result)
	c.Flash.Redirect(w, r, "/shows/create", helpers.FlashError, msg)
}

func (c *ShowController) renderForm(w http.ResponseWriter, r *http.Request, status int, values url.Values, errs map[string]string) {
	c.render(w, r, status, "show_form", &views.Page{Title: "New Show", Values: values, Errors: errs})
}
