package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/rishabhsssrrr13/ppss/internal/domain"
)

// flashCookie carries a one-shot user-visible notice across a redirect.
const flashCookie = "flash"

// pageData is the view model shared by all templates.
type pageData struct {
	Flash       string
	Prediction  string
	Suggestions []string
	Intents     []domain.Intent
}

// render executes the named template, draining any pending flash notice into
// the page unless data already carries one.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if data.Flash == "" {
		data.Flash = popFlash(w, r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// setFlash stores a notice shown on the next rendered page.
// The value is escaped because cookie values cannot carry spaces or
// non-ASCII text (the fallback notice is partly Devanagari).
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending notice, if any, and clears it.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	message, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return message
}
