package helpers

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash kinds rendered by the layout.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Kind    string
	Message string
}

// Flasher stores flash messages in a short-lived cookie.
type Flasher struct {
	CookieName string
}

func NewFlasher(cookieName string) *Flasher {
	return &Flasher{CookieName: cookieName}
}

// Set queues msg for the next page rendered for this client.
func (f *Flasher) Set(w http.ResponseWriter, kind, msg string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(kind + "|" + msg))
	http.SetCookie(w, &http.Cookie{
		Name:     f.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending flash, if any, and expires the cookie.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(f.CookieName)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: f.CookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	kind, msg, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: msg}
}

// Redirect flashes msg and sends a 303 to target.
func (f *Flasher) Redirect(w http.ResponseWriter, r *http.Request, target, kind, msg string) {
	f.Set(w, kind, msg)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
