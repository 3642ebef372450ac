package controllers

import (
	"net/http"

	"showbooking/internal/delivery/http/views"
	"showbooking/internal/domain"
)

type HomeController struct {
	*Pages
	Venues  domain.VenueService
	Artists domain.ArtistService
}

func NewHomeController(pages *Pages, venues domain.VenueService, artists domain.ArtistService) *HomeController {
	return &HomeController{Pages: pages, Venues: venues, Artists: artists}
}

// Index godoc
// @Summary Home page
// @Description Lists the ten most recently added venues and artists.
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{Title: "Home"}
	venues, err := c.Venues.ListRecentVenues(r.Context(), 0)
	if err != nil {
		c.logFailure(r, err)
		page.Warning = readWarning
		venues = []*domain.Venue{}
	}
	artists, err := c.Artists.ListRecentArtists(r.Context(), 0)
	if err != nil {
		c.logFailure(r, err)
		page.Warning = readWarning
		artists = []*domain.Artist{}
	}
	page.Data = map[string]any{"Venues": venues, "Artists": artists}
	c.render(w, r, http.StatusOK, "home", page)
}
