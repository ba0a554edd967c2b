package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/simpleapp/docs"
	"github.com/fkhayef/simpleapp/internal/health"
	"github.com/fkhayef/simpleapp/internal/user"
	mw "github.com/fkhayef/simpleapp/pkg/middleware"
	"github.com/fkhayef/simpleapp/pkg/response"
)

type routerDeps struct {
	users          *user.Handler
	health         *health.Handler
	allowedOrigins []string
	logger         *slog.Logger
}

// newRouter configures the chi router with all routes and middleware.
func newRouter(d routerDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(mw.Logger(d.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.CORS(mw.CORSConfig{
		AllowedOrigins: d.allowedOrigins,
		MaxAge:         86400,
	}))

	r.Get("/health", d.health.Live)
	r.Get("/readyz", d.health.Ready)

	// Interactive API documentation
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusFound)
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Mount("/users", d.users.Routes())
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "method not allowed")
	})

	return r
}
