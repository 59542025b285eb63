package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"boost_site/internal/app"
	"boost_site/internal/domain"
)

type Handlers struct {
	Reviews *app.ReviewService
	Content *app.ContentService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// MountHandlers registers the API routes. mutLimit, when non-nil, wraps the
// review mutation routes only; reads stay unthrottled.
func (s *Server) MountHandlers(h *Handlers, mutLimit func(http.Handler) http.Handler) {
	s.mux.Get("/api/health", h.health)
	s.mux.Get("/api/reviews", h.listReviews)

	s.mux.Group(func(r chi.Router) {
		if mutLimit != nil {
			r.Use(mutLimit)
		}
		r.Post("/api/reviews", h.appendReview)
		r.Delete("/api/reviews/{id}", h.deleteReview)
	})

	s.mux.Get("/api/content/home", h.homeContent)
	s.mux.Get("/api/content/faq", h.faqContent)
	s.mux.Get("/api/content/services", h.servicesContent)
	s.mux.Get("/api/content/recruitment", h.recruitmentContent)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Reviews.List(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not load reviews")
		return
	}
	if rs == nil {
		rs = []domain.Review{} // serialize as [], not null
	}
	writeJSON(w, http.StatusOK, rs)
}

func (h *Handlers) appendReview(w http.ResponseWriter, r *http.Request) {
	var in domain.Review
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	// Field presence and rating bounds are deliberately not validated;
	// blank fields are stored as sent. Only id and date are server-owned.
	created, err := h.Reviews.Append(r.Context(), in)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not save review")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	n, err := h.Reviews.Delete(r.Context(), id, body.Password)
	if errors.Is(err, app.ErrUnauthorized) {
		writeProblem(w, http.StatusForbidden, "Unauthorized", "")
		return
	}
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not delete review")
		return
	}
	// An unknown id deletes zero records and still succeeds.
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id, "deleted": n})
}

func (h *Handlers) homeContent(w http.ResponseWriter, r *http.Request) {
	out, err := h.Content.Home(r.URL.Query().Get("variant"))
	if errors.Is(err, app.ErrUnknownVariant) {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown content variant")
		return
	}
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) faqContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Content.FAQ())
}

func (h *Handlers) servicesContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Content.Services())
}

func (h *Handlers) recruitmentContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Content.Recruitment())
}
