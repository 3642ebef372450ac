package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"showbooking/internal/delivery/http/helpers"
	"showbooking/internal/delivery/http/views"
	"showbooking/internal/domain"
)

type VenueController struct {
	*Pages
	Service domain.VenueService
}

func NewVenueController(pages *Pages, svc domain.VenueService) *VenueController {
	return &VenueController{Pages: pages, Service: svc}
}

// List godoc
// @Summary List venues grouped by area
// @Description Venues grouped by city and state, each with its number of upcoming shows.
// @Tags venues
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /venues [get]
func (c *VenueController) List(w http.ResponseWriter, r *http.Request) {
	page := &views.Page{Title: "Venues"}
	areas, err := c.Service.ListVenuesByArea(r.Context())
	if err != nil {
		c.logFailure(r, err)
		page.Warning = readWarning
		areas = []*domain.VenueArea{}
	}
	page.Data = areas
	c.render(w, r, http.StatusOK, "venues", page)
}

// Search godoc
// @Summary Search venues by name
// @Description Case-insensitive substring match on the venue name.
// @Tags venues
// @Accept x-www-form-urlencoded
// @Produce html
// @Param search_term formData string false "Part of a venue name"
// @Success 200 {string} string "HTML page"
// @Router /venues/search [post]
func (c *VenueController) Search(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	page := &views.Page{Title: "Venue search"}
	result, err := c.Service.SearchVenues(r.Context(), term)
	if err != nil {
		c.logFailure(r, err)
		page.Warning = readWarning
		result = &domain.SearchResult[domain.VenueSummary]{Term: term, Data: []*domain.VenueSummary{}}
	}
	page.Data = result
	c.render(w, r, http.StatusOK, "search_venues", page)
}

// Show godoc
// @Summary Venue detail
// @Description The venue with its past and upcoming shows.
// @Tags venues
// @Produce html
// @Param id path int true "Venue ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "HTML page"
// @Router /venues/{id} [get]
func (c *VenueController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.NotFound(w, r)
		return
	}
	detail, err := c.Service.GetVenueDetail(r.Context(), id)
	if err != nil && detail != nil {
		c.logFailure(r, err)
		c.render(w, r, http.StatusOK, "venue", &views.Page{Title: detail.Venue.Name, Warning: readWarning, Data: detail})
		return
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.NotFound(w, r)
			return
		}
		c.serverError(w, r, err)
		return
	}
	c.render(w, r, http.StatusOK, "venue", &views.Page{Title: detail.Venue.Name, Data: detail})
}

// CreateForm godoc
// @Summary New venue form
// @Tags venues
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /venues/create [get]
func (c *VenueController) CreateForm(w http.ResponseWriter, r *http.Request) {
	c.renderForm(w, r, http.StatusOK, "New Venue", "/venues/create", nil, nil)
}

// Create godoc
// @Summary Create a venue
// @Description Seeking talent is set when seeking_talent is "y". Redirects home with a flash message.
// @Tags venues
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param state formData string true "Two-letter state code"
// @Param address formData string true "Street address"
// @Param phone formData string false "Phone"
// @Param genres formData []string true "Genres" collectionFormat(multi)
// @Param image_link formData string false "Image URL"
// @Param facebook_link formData string false "Facebook URL"
// @Param website formData string false "Website URL"
// @Param description formData string false "Description"
// @Param seeking_talent formData string false "y when seeking talent"
// @Param seeking_description formData string false "What talent is sought"
// @Success 303 {string} string "redirect to /"
// @Failure 400 {string} string "form re-rendered with field errors"
// @Router /venues/create [post]
func (c *VenueController) Create(w http.ResponseWriter, r *http.Request) {
	var form VenueForm
	if err := helpers.DecodeForm(r, &form); err != nil {
		c.formError(w, r, "New Venue", "/venues/create", err)
		return
	}
	venue, err := form.toVenue()
	if err == nil {
		err = c.Service.CreateVenue(r.Context(), venue)
	}
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.formError(w, r, "New Venue", "/venues/create", err)
			return
		}
		c.logFailure(r, err)
		c.Flash.Redirect(w, r, "/", helpers.FlashError, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}
	c.Flash.Redirect(w, r, "/", helpers.FlashSuccess, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

// EditForm godoc
// @Summary Edit venue form
// @Description The form prefilled from the stored venue.
// @Tags venues
// @Produce html
// @Param id path int true "Venue ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "HTML page"
// @Router /venues/{id}/edit [get]
func (c *VenueController) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.NotFound(w, r)
		return
	}
	venue, err := c.Service.GetVenue(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.NotFound(w, r)
			return
		}
		c.serverError(w, r, err)
		return
	}
	form, err := venueFormFrom(venue)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	values, err := helpers.EncodeForm(form)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	c.renderForm(w, r, http.StatusOK, "Edit "+venue.Name, editVenuePath(id), values, nil)
}

// Edit godoc
// @Summary Update a venue
// @Description Accepts the same fields as create. Redirects to the venue page with a flash message.
// @Tags venues
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Venue ID"
// @Success 303 {string} string "redirect to /venues/{id}"
// @Failure 400 {string} string "form re-rendered with field errors"
// @Failure 404 {string} string "HTML page"
// @Router /venues/{id}/edit [post]
func (c *VenueController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.NotFound(w, r)
		return
	}
	var form VenueForm
	if err := helpers.DecodeForm(r, &form); err != nil {
		c.formError(w, r, "Edit Venue", editVenuePath(id), err)
		return
	}
	venue, err := form.toVenue()
	if err == nil {
		venue.ID = id
		err = c.Service.UpdateVenue(r.Context(), venue)
	}
	var ve *domain.ValidationError
	switch {
	case err == nil:
		c.Flash.Redirect(w, r, venuePath(id), helpers.FlashSuccess, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	case errors.Is(err, domain.ErrNotFound):
		c.NotFound(w, r)
	case errors.As(err, &ve):
		c.formError(w, r, "Edit Venue", editVenuePath(id), err)
	default:
		c.logFailure(r, err)
		c.Flash.Redirect(w, r, venuePath(id), helpers.FlashError, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
	}
}

// Delete godoc
// @Summary Delete a venue
// @Description Removes the venue and all of its shows. Deleting a missing venue still succeeds.
// @Tags venues
// @Produce html
// @Param id path int true "Venue ID"
// @Success 303 {string} string "redirect to /"
// @Router /venues/{id} [delete]
// @Router /venues/{id}/delete [post]
func (c *VenueController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.NotFound(w, r)
		return
	}
	if err := c.Service.DeleteVenue(r.Context(), id); err != nil {
		c.logFailure(r, err)
		c.Flash.Redirect(w, r, "/", helpers.FlashError, "An error occurred. Venue could not be deleted.")
		return
	}
	c.Flash.Redirect(w, r, "/", helpers.FlashSuccess, "Venue was successfully deleted!")
}

func (c *VenueController) renderForm(w http.ResponseWriter, r *http.Request, status int, title, action string, values url.Values, errs map[string]string) {
	c.render(w, r, status, "venue_form", &views.Page{
		Title:  title,
		Values: values,
		Errors: errs,
		Data:   map[string]any{"Action": action},
	})
}

// formError re-renders the form with the posted values when err is a validation error,
// and renders the 500 page otherwise.
func (c *VenueController) formError(w http.ResponseWriter, r *http.Request, title, action string, err error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		c.serverError(w, r, err)
		return
	}
	c.renderForm(w, r, http.StatusBadRequest, title, action, r.PostForm, ve.Fields)
}

func venuePath(id int64) string     { return fmt.Sprintf("/venues/%d", id) }
func editVenuePath(id int64) string { return fmt.Sprintf("/venues/%d/edit", id) }
