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

type ArtistController struct {
	*Pages
	Service domain.ArtistService
}

func NewArtistController(pages *Pages, svc domain.ArtistService) *ArtistController {
	return &ArtistController{Pages: pages, Service: svc}
}

// List godoc
// @Summary List artists
// @Description Artists ordered by id, paginated.
// @Tags artists
// @Produce html
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Items per page (max 100)" default(20)
// @Success 200 {string} string "HTML page"
// @Router /artists [get]
func (c *ArtistController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	page := &views.Page{Title: "Artists"}
	artists, total, err := c.Service.ListArtists(r.Context(), params)
	if err != nil {
		c.logFailure(r, err)
		page.Warning = readWarning
		artists, total = []*domain.Artist{}, 0
	}
	page.Data = map[string]any{
		"Artists": artists,
		"Meta":    helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	}
	c.render(w, r, http.StatusOK, "artists", page)
}

// Search godoc
// @Summary Search artists by name
// @Description Case-insensitive substring match on the artist name.
// @Tags artists
// @Accept x-www-form-urlencoded
// @Produce html
// @Param search_term formData string false "Part of an artist name"
// @Success 200 {string} string "HTML page"
// @Router /artists/search [post]
func (c *ArtistController) Search(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	page := &views.Page{Title: "Artist search"}
	result, err := c.Service.SearchArtists(r.Context(), term)
	if err != nil {
		c.logFailure(r, err)
		page.Warning = readWarning
		result = &domain.SearchResult[domain.ArtistSummary]{Term: term, Data: []*domain.ArtistSummary{}}
	}
	page.Data = result
	c.render(w, r, http.StatusOK, "search_artists", page)
}

// Show godoc
// @Summary Artist detail
// @Description The artist with past and upcoming shows.
// @Tags artists
// @Produce html
// @Param id path int true "Artist ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "HTML page"
// @Router /artists/{id} [get]
func (c *ArtistController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.NotFound(w, r)
		return
	}
	detail, err := c.Service.GetArtistDetail(r.Context(), id)
	if err != nil && detail != nil {
		c.logFailure(r, err)
		c.render(w, r, http.StatusOK, "artist", &views.Page{Title: detail.Artist.Name, Warning: readWarning, Data: detail})
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
	c.render(w, r, http.StatusOK, "artist", &views.Page{Title: detail.Artist.Name, Data: detail})
}

// CreateForm godoc
// @Summary New artist form
// @Tags artists
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /artists/create [get]
func (c *ArtistController) CreateForm(w http.ResponseWriter, r *http.Request) {
	c.renderForm(w, r, http.StatusOK, "New Artist", "/artists/create", nil, nil)
}

// Create godoc
// @Summary Create an artist
// @Description Seeking venue is set when seeking_venue is "y". Redirects home with a flash message.
// @Tags artists
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param state formData string true "Two-letter state code"
// @Param phone formData string false "Phone"
// @Param genres formData []string true "Genres" collectionFormat(multi)
// @Param image_link formData string false "Image URL"
// @Param facebook_link formData string false "Facebook URL"
// @Param website formData string false "Website URL"
// @Param seeking_venue formData string false "y when seeking venues"
// @Param seeking_description formData string false "What venues are sought"
// @Success 303 {string} string "redirect to /"
// @Failure 400 {string} string "form re-rendered with field errors"
// @Router /artists/create [post]
func (c *ArtistController) Create(w http.ResponseWriter, r *http.Request) {
	var form ArtistForm
	if err := helpers.DecodeForm(r, &form); err != nil {
		c.formError(w, r, "New Artist", "/artists/create", err)
		return
	}
	artist, err := form.toArtist()
	if err == nil {
		err = c.Service.CreateArtist(r.Context(), artist)
	}
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.formError(w, r, "New Artist", "/artists/create", err)
			return
		}
		c.logFailure(r, err)
		c.Flash.Redirect(w, r, "/", helpers.FlashError, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}
	c.Flash.Redirect(w, r, "/", helpers.FlashSuccess, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

// EditForm godoc
// @Summary Edit artist form
// @Description The form prefilled from the stored artist.
// @Tags artists
// @Produce html
// @Param id path int true "Artist ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "HTML page"
// @Router /artists/{id}/edit [get]
func (c *ArtistController) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.NotFound(w, r)
		return
	}
	artist, err := c.Service.GetArtist(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.NotFound(w, r)
			return
		}
		c.serverError(w, r, err)
		return
	}
	form, err := artistFormFrom(artist)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	values, err := helpers.EncodeForm(form)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	c.renderForm(w, r, http.StatusOK, "Edit "+artist.Name, editArtistPath(id), values, nil)
}

// Edit godoc
// @Summary Update an artist
// @Description Accepts the same fields as create. Redirects to the artist page with a flash message.
// @Tags artists
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Artist ID"
// @Success 303 {string} string "redirect to /artists/{id}"
// @Failure 400 {string} string "form re-rendered with field errors"
// @Failure 404 {string} string "HTML page"
// @Router /artists/{id}/edit [post]
func (c *ArtistController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.NotFound(w, r)
		return
	}
	var form ArtistForm
	if err := helpers.DecodeForm(r, &form); err != nil {
		c.formError(w, r, "Edit Artist", editArtistPath(id), err)
		return
	}
	artist, err := form.toArtist()
	if err == nil {
		artist.ID = id
		err = c.Service.UpdateArtist(r.Context(), artist)
	}
	var ve *domain.ValidationError
	switch {
	case err == nil:
		c.Flash.Redirect(w, r, artistPath(id), helpers.FlashSuccess, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	case errors.Is(err, domain.ErrNotFound):
		c.NotFound(w, r)
	case errors.As(err, &ve):
		c.formError(w, r, "Edit Artist", editArtistPath(id), err)
	default:
		c.logFailure(r, err)
		c.Flash.Redirect(w, r, artistPath(id), helpers.FlashError, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
	}
}

// Delete godoc
// @Summary Delete an artist
// @Description Removes the artist and all of their shows. Deleting a missing artist still succeeds.
// @Tags artists
// @Produce html
// @Param id path int true "Artist ID"
// @Success 303 {string} string "redirect to /"
// @Router /artists/{id} [delete]
// @Router /artists/{id}/delete [post]
func (c *ArtistController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		c.NotFound(w, r)
		return
	}
	if err := c.Service.DeleteArtist(r.Context(), id); err != nil {
		c.logFailure(r, err)
		c.Flash.Redirect(w, r, "/", helpers.FlashError, "An error occurred. Artist could not be deleted.")
		return
	}
	c.Flash.Redirect(w, r, "/", helpers.FlashSuccess, "Artist was successfully deleted!")
}

func (c *ArtistController) renderForm(w http.ResponseWriter, r *http.Request, status int, title, action string, values url.Values, errs map[string]string) {
	c.render(w, r, status, "artist_form", &views.Page{
		Title:  title,
		Values: values,
		Errors: errs,
		Data:   map[string]any{"Action": action},
	})
}

func (c *ArtistController) formError(w http.ResponseWriter, r *http.Request, title, action string, err error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		c.serverError(w, r, err)
		return
	}
	c.renderForm(w, r, http.StatusBadRequest, title, action, r.PostForm, ve.Fields)
}

func artistPath(id int64) string     { return fmt.Sprintf("/artists/%d", id) }
func editArtistPath(id int64) string { return fmt.Sprintf("/artists/%d/edit", id) }
