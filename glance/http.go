package glance

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/etnz/drip/date"
	"github.com/etnz/drip/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter serves the view over HTTP:
//
//	GET /glance[?on=YYYY-MM-DD]  the view, read again on each request
//	GET /healthz
//
// today gives the day used when the query has none.
func NewRouter(log *slog.Logger, r ViewReader, today func() date.Date) chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(requestLogger(log))
	router.Use(chimiddleware.Recoverer)

	h := &handlers{reader: r, today: today}
	router.Get("/glance", h.getGlance)
	router.Get("/healthz", h.getHealth)
	return router
}

// requestLogger puts a request scoped logger in the request context.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			enriched := log.With(
				"request_id", chimiddleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			next.ServeHTTP(w, r.WithContext(logger.ToContext(r.Context(), enriched)))
		})
	}
}

type handlers struct {
	reader ViewReader
	today  func() date.Date
}

func (h *handlers) getGlance(w http.ResponseWriter, r *http.Request) {
	on := h.today()
	if q := r.URL.Query().Get("on"); q != "" {
		d, err := date.ParseFrom(q, on)
		if err != nil {
			writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		on = d
	}
	writeJSON(w, r, http.StatusOK, h.reader.Read(r.Context(), on))
}

func (h *handlers) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Last-ditch logging; can't return an error now
		logger.FromContext(r.Context()).Error("failed to encode response", "error", err)
	}
}
