package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)
	router.Use(app.Authenticate)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", app.healthcheck)
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", app.getMovies)
			r.Get("/{id}", app.getMovie)
			r.With(app.requireAdminUser).Post("/", app.createMovie)
			r.With(app.requireAdminUser).Put("/{id}", app.updateMovie)
			r.With(app.requireAdminUser).Delete("/{id}", app.deleteMovie)
		})
		r.Route("/awards", func(r chi.Router) {
			r.Get("/", app.getAwards)
			r.Get("/{id}", app.getAward)
			r.With(app.requireAdminUser).Post("/", app.createAward)
			r.With(app.requireAdminUser).Put("/{id}", app.updateAward)
			r.With(app.requireAdminUser).Delete("/{id}", app.deleteAward)
		})
		r.Get("/view-awards", app.getViewAwards)
		r.With(app.requireAuthenticatedUser).Put("/user-movies/{id}", app.updateUserMovie)
		r.Route("/prefs", func(r chi.Router) {
			r.Use(app.requireAuthenticatedUser)
			r.Get("/", app.getPrefs)
			r.Put("/", app.updatePrefs)
		})
	})
	return router
}
