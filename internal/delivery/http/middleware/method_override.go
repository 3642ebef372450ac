package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride lets HTML forms issue PUT, PATCH and DELETE by posting a _method field.
// The request is changed in place.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch m := strings.ToUpper(r.PostFormValue("_method")); m {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}
