package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// NewRouter registers the controller's routes on a gorilla/mux router.
// metrics, when non-nil, is served at GET /metrics. Every request is logged
// at debug level through logger.
func NewRouter(c *Controller, metrics http.Handler, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	for _, route := range c.Routes() {
		router.
			Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(route.HandlerFunc)
	}
	if metrics != nil {
		router.Methods(http.MethodGet).Path("/metrics").Name("Metrics").Handler(metrics)
	}
	if logger != nil {
		router.Use(requestLogger(logger))
	}

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			name := ""
			if route := mux.CurrentRoute(r); route != nil {
				name = route.GetName()
			}
			logger.DebugContext(r.Context(), "http_request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", name),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(began)),
			)
		})
	}
}
