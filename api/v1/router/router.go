package router

import (
	"io"

	"github.com/GHutch55/demo-app/api/v1/handlers"
	"github.com/GHutch55/demo-app/api/v1/middleware"
	"github.com/GHutch55/demo-app/config"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the route table for cfg. Request logs go to logOut.
func NewRouter(cfg config.Config, logOut io.Writer) *chi.Mux {
	homeHandler := &handlers.HomeHandler{BuildID: cfg.BuildID}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(logOut))
	r.Use(chimw.Recoverer)
	r.Use(middleware.RateLimit(cfg.RateLimit))
	r.Use(chimw.GetHead)

	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	// CORS only wraps matched routes so unknown paths still 404, preflight
	// included.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS(cfg.CORSOrigins))

		r.Get("/", homeHandler.Home)
		r.Options("/", handlers.OptionsHandler)

		r.Get("/healthz", handlers.HealthHandler)
		r.Options("/healthz", handlers.OptionsHandler)
	})

	return r
}
