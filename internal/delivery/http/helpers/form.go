package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"showbooking/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// Layouts accepted for show times, tried in order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// TimeLayout is the layout used when writing times back into forms.
const TimeLayout = "2006-01-02 15:04:05"

var (
	decoder  = newDecoder()
	encoder  = newEncoder()
	validate = newValidator()
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(time.Time{}, func(s string) reflect.Value {
		t, err := ParseTime(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(t)
	})
	return d
}

func newEncoder() *schema.Encoder {
	e := schema.NewEncoder()
	e.RegisterEncoder(time.Time{}, func(v reflect.Value) string {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return ""
		}
		return t.Format(TimeLayout)
	})
	return e
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("schema"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		return domain.IsState(fl.Field().String())
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return domain.IsGenre(fl.Field().String())
	})
	return v
}

// ParseTime parses a show time in any accepted layout. Layouts without a zone are read as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}

// DecodeForm parses the request's URL-encoded body into dst and validates it.
// Field problems are returned as a *domain.ValidationError keyed by form field name.
func DecodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	fields := map[string]string{}
	if err := decoder.Decode(dst, r.PostForm); err != nil {
		var multi schema.MultiError
		if !errors.As(err, &multi) {
			return fmt.Errorf("decode form: %w", err)
		}
		for key := range multi {
			fields[key] = conversionMessage(key)
		}
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate form: %w", err)
		}
		for _, fe := range verrs {
			name := fieldName(fe)
			if _, seen := fields[name]; !seen {
				fields[name] = fieldMessage(name, fe)
			}
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// EncodeForm writes src back into form values, the inverse of DecodeForm.
func EncodeForm(src any) (url.Values, error) {
	values := url.Values{}
	if err := encoder.Encode(src, values); err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}
	return values, nil
}

// fieldName strips the slice index from names like "genres[0]".
func fieldName(fe validator.FieldError) string {
	name, _, _ := strings.Cut(fe.Field(), "[")
	return name
}

func conversionMessage(field string) string {
	if strings.HasSuffix(field, "_time") {
		return field + " must be a date and time like 2026-01-31 20:00:00"
	}
	return field + " is not a valid value"
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "url":
		return name + " must be a valid URL"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "gt":
		return name + " must be a valid id"
	case "state":
		return name + " must be a two-letter US state code"
	case "genre":
		return fmt.Sprintf("%s contains an unknown genre %q", name, fe.Value())
	}
	return name + " is invalid"
}
