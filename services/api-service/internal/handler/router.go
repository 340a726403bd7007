package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// NewRouter mounts the dispatcher at /api behind CORS, request logging,
// panic recovery and the session middleware. realIP resolves the client
// address from trusted proxies; nil keeps the connection's peer address.
func NewRouter(logger *zerolog.Logger, dispatcher http.Handler, realIP, session Middleware) http.Handler {
	r := chi.NewRouter()

	if realIP != nil {
		r.Use(realIP)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: allowedMethods(),
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(hlog.NewHandler(*logger))
	r.Use(hlog.RequestIDHandler("request_id", "X-Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("type", r.URL.Query().Get("type")).
			Str("client_ip", r.RemoteAddr).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("http request")
	}))
	r.Use(chimiddleware.Recoverer)
	if session != nil {
		r.Use(session)
	}

	r.Handle("/api", dispatcher)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
