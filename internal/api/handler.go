// Package api provides the HTTP handlers for the chatbot, the placement
// predictor and the intent admin console.
package api

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rishabhsssrrr13/ppss/internal/bot"
	"github.com/rishabhsssrrr13/ppss/internal/domain"
	"github.com/rishabhsssrrr13/ppss/internal/placement"
	"github.com/rishabhsssrrr13/ppss/internal/session"
	"github.com/rishabhsssrrr13/ppss/internal/store"
)

// Handler serves all application routes.
type Handler struct {
	repo          store.Repository
	responder     *bot.Responder
	predictor     *placement.Predictor // nil when no model is configured
	sessions      *session.Manager
	adminPassword string
	tmpl          *template.Template
}

// NewHandler creates a Handler rendering the given template filesystem.
func NewHandler(repo store.Repository, responder *bot.Responder, predictor *placement.Predictor, sessions *session.Manager, adminPassword string, templates fs.FS) (*Handler, error) {
	tmpl, err := template.ParseFS(templates, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Handler{
		repo:          repo,
		responder:     responder,
		predictor:     predictor,
		sessions:      sessions,
		adminPassword: adminPassword,
		tmpl:          tmpl,
	}, nil
}

// RegisterRoutes mounts all routes on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Post("/chat_response", h.chatResponse)
	r.Post("/placement_predict", h.placementPredict)
	r.Get("/login", h.loginForm)
	r.Post("/login", h.login)
	r.Get("/logout", h.logout)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Get("/admin", h.adminPage)
		r.Post("/add_intent", h.addIntent)
		r.Post("/update_intent/{id}", h.updateIntent)
		r.Get("/delete_intent/{id}", h.deleteIntent)
	})
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "index.html", pageData{})
}

func (h *Handler) chatResponse(w http.ResponseWriter, r *http.Request) {
	message := r.FormValue("msg")

	reply, err := h.responder.Reply(r.Context(), message)
	if err != nil {
		slog.Error("chat exchange failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(reply)); err != nil {
		slog.Warn("failed to write chat response", "error", err)
	}
}

func (h *Handler) placementPredict(w http.ResponseWriter, r *http.Request) {
	if h.predictor == nil {
		http.Error(w, "placement prediction is not available", http.StatusServiceUnavailable)
		return
	}

	profile, err := parseProfile(r)
	if err != nil {
		h.render(w, r, http.StatusUnprocessableEntity, "index.html", pageData{
			Flash: "Invalid placement form input.",
		})
		return
	}

	result, err := h.predictor.Predict(profile)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.render(w, r, http.StatusUnprocessableEntity, "index.html", pageData{
				Flash: "Invalid placement form input.",
			})
			return
		}
		slog.Error("placement prediction failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "index.html", pageData{
		Prediction:  result.Label,
		Suggestions: result.Suggestions,
	})
}

// parseProfile converts the placement form into a StudentProfile. Numeric
// conversion failures are reported before the predictor sees the profile.
func parseProfile(r *http.Request) (*domain.StudentProfile, error) {
	profile := &domain.StudentProfile{Name: r.FormValue("Name")}

	var err error
	if profile.CGPA, err = strconv.ParseFloat(r.FormValue("CGPA"), 64); err != nil {
		return nil, fmt.Errorf("parse CGPA: %w", err)
	}

	intFields := []struct {
		name string
		dst  *int
	}{
		{"Internship", &profile.Internship},
		{"Communication", &profile.Communication},
		{"Technical", &profile.Technical},
		{"Certifications", &profile.Certifications},
		{"Projects", &profile.Projects},
		{"ExtraActivities", &profile.ExtraActivities},
	}
	for _, f := range intFields {
		if *f.dst, err = strconv.Atoi(r.FormValue(f.name)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.name, err)
		}
	}

	return profile, nil
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", pageData{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	if subtle.ConstantTimeCompare([]byte(password), []byte(h.adminPassword)) != 1 {
		setFlash(w, "Wrong password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token := h.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Destroy(c.Value)
	}
	clearSessionCookie(w)
	setFlash(w, "Logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// requireAdmin gates mutation routes behind an authenticated session.
// Idle-expired sessions get a notice; everything else silently lands on the
// login page.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		if c, err := r.Cookie(session.CookieName); err == nil {
			token = c.Value
		}

		switch h.sessions.Touch(token) {
		case session.StateActive:
			next.ServeHTTP(w, r)
		case session.StateExpired:
			clearSessionCookie(w)
			setFlash(w, "Session expired. Please login again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		}
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) adminPage(w http.ResponseWriter, r *http.Request) {
	intents, err := h.repo.ListIntents(r.Context())
	if err != nil {
		slog.Error("failed to list intents", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "admin.html", pageData{Intents: intents})
}

func (h *Handler) addIntent(w http.ResponseWriter, r *http.Request) {
	intent := &domain.Intent{
		Tag:      r.FormValue("tag"),
		Pattern:  r.FormValue("pattern"),
		Response: r.FormValue("response"),
	}

	if err := intent.Validate(); err != nil {
		setFlash(w, "All fields required.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if err := h.repo.InsertIntent(r.Context(), intent); err != nil {
		slog.Error("failed to insert intent", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "Intent added.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) updateIntent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	intent := &domain.Intent{
		ID:       id,
		Tag:      r.FormValue("tag"),
		Pattern:  r.FormValue("pattern"),
		Response: r.FormValue("response"),
	}

	if err := intent.Validate(); err != nil {
		setFlash(w, "All fields are required for update.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if err := h.repo.UpdateIntent(r.Context(), intent); err != nil {
		slog.Error("failed to update intent", "intent_id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "Intent updated successfully.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) deleteIntent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.repo.DeleteIntent(r.Context(), id); err != nil {
		slog.Error("failed to delete intent", "intent_id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "Intent deleted.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
