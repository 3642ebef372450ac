package controllers

import (
	"time"

	"showbooking/internal/domain"

	"github.com/jinzhu/copier"
)

// seekingChecked is the value an HTML checkbox posts when ticked.
const seekingChecked = "y"

// VenueForm is the URL-encoded body of the venue create and edit forms.
type VenueForm struct {
	Name               string   `schema:"name" validate:"required,max=120"`
	City               string   `schema:"city" validate:"required,max=120"`
	State              string   `schema:"state" validate:"required,state"`
	Address            string   `schema:"address" validate:"required,max=120"`
	Phone              string   `schema:"phone" validate:"max=120"`
	Genres             []string `schema:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `schema:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `schema:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `schema:"website" validate:"omitempty,url,max=120"`
	Description        string   `schema:"description" validate:"max=500"`
	Seeking            string   `schema:"seeking_talent"`
	SeekingDescription string   `schema:"seeking_description" validate:"max=500"`
}

func (f *VenueForm) toVenue() (*domain.Venue, error) {
	v := &domain.Venue{}
	if err := copier.Copy(v, f); err != nil {
		return nil, err
	}
	v.SeekingTalent = f.Seeking == seekingChecked
	return v, nil
}

func venueFormFrom(v *domain.Venue) (*VenueForm, error) {
	f := &VenueForm{}
	if err := copier.Copy(f, v); err != nil {
		return nil, err
	}
	if v.SeekingTalent {
		f.Seeking = seekingChecked
	}
	return f, nil
}

// ArtistForm is the URL-encoded body of the artist create and edit forms.
type ArtistForm struct {
	Name               string   `schema:"name" validate:"required,max=120"`
	City               string   `schema:"city" validate:"required,max=120"`
	State              string   `schema:"state" validate:"required,state"`
	Phone              string   `schema:"phone" validate:"max=120"`
	Genres             []string `schema:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `schema:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `schema:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `schema:"website" validate:"omitempty,url,max=120"`
	Seeking            string   `schema:"seeking_venue"`
	SeekingDescription string   `schema:"seeking_description" validate:"max=500"`
}

func (f *ArtistForm) toArtist() (*domain.Artist, error) {
	a := &domain.Artist{}
	if err := copier.Copy(a, f); err != nil {
		return nil, err
	}
	a.SeekingVenue = f.Seeking == seekingChecked
	return a, nil
}

func artistFormFrom(a *domain.Artist) (*ArtistForm, error) {
	f := &ArtistForm{}
	if err := copier.Copy(f, a); err != nil {
		return nil, err
	}
	if a.SeekingVenue {
		f.Seeking = seekingChecked
	}
	return f, nil
}

// ShowForm is the URL-encoded body of the show create form.
type ShowForm struct {
	ArtistID  int64     `schema:"artist_id" validate:"required,gt=0"`
	VenueID   int64     `schema:"venue_id" validate:"required,gt=0"`
	StartTime time.Time `schema:"start_time" validate:"required"`
	EndTime   time.Time `schema:"end_time" validate:"required"`
}
