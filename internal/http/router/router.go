// Package router wires the HTTP handlers onto a chi router together with
// the middleware stack.
//
// Route table:
//
//	GET /               → HTML page with the search form and results
//	GET /api/students   → the same search as JSON (CORS enabled)
//	GET /healthz        → liveness probe
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aanand-mishra/students-directory/internal/http/handlers/student"
	"github.com/aanand-mishra/students-directory/internal/render"
	"github.com/aanand-mishra/students-directory/internal/storage"
	"github.com/aanand-mishra/students-directory/internal/utils/response"
)

// RequestTimeout bounds a whole request, roster fetch included.
const RequestTimeout = 30 * time.Second

// New builds the application router.
func New(log *slog.Logger, storage storage.Storage, renderer *render.Renderer, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.WriteJSON(w, http.StatusOK, response.OK())
	})

	r.Get("/", student.Page(storage, renderer))

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/students", student.GetList(storage))
	})

	return r
}

// requestLogger logs one line per request through slog, tagged with the
// chi request id.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Info("request completed",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
