package services

import (
	"errors"
	"fmt"
	"strings"

	"showbooking/internal/domain"
)

// recentLimit is how many listings the home page shows per kind.
const recentLimit = 10

// wrapErr tags err with op. Domain errors keep their identity through %w; anything
// else coming out of the store becomes a PersistenceError.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *domain.PersistenceError
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrShowOverlap),
		errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrStartInPast):
		return fmt.Errorf("%s: %w", op, err)
	case errors.As(err, &pe), errors.As(err, &ve):
		return err
	}
	return &domain.PersistenceError{Op: op, Err: err}
}

// validateListing checks the fields venues and artists share.
func validateListing(name, state string, genres []string) error {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	if !domain.IsState(state) {
		fields["state"] = "state must be a two-letter US state code"
	}
	if len(genres) == 0 {
		fields["genres"] = "at least one genre is required"
	}
	for _, g := range genres {
		if !domain.IsGenre(g) {
			fields["genres"] = fmt.Sprintf("unknown genre %q", g)
			break
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func idsOf[T any](items []*T, id func(*T) int64) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, id(it))
	}
	return ids
}
