package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/eazybank-api/internal/api"
	apiMiddleware "github.com/phrazzld/eazybank-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	accountHandler := api.NewAccountHandler(app.accountService, app.logger)
	loanHandler := api.NewLoanHandler(app.loanService, app.logger)
	cardHandler := api.NewCardHandler(app.cardService, app.logger)

	var pinger api.Pinger
	if app.db != nil {
		pinger = app.db
	}
	healthHandler := api.NewHealthHandler(pinger, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/create", accountHandler.CreateAccount)
			r.Get("/fetch", accountHandler.FetchAccount)
			r.Put("/update", accountHandler.UpdateAccount)
			r.Delete("/delete", accountHandler.DeleteAccount)
		})

		r.Route("/loans", func(r chi.Router) {
			r.Post("/create", loanHandler.CreateLoan)
			r.Get("/fetch", loanHandler.FetchLoan)
			r.Put("/update", loanHandler.UpdateLoan)
			r.Delete("/delete", loanHandler.DeleteLoan)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Post("/create", cardHandler.CreateCard)
			r.Get("/fetch", cardHandler.FetchCard)
			r.Put("/update", cardHandler.UpdateCard)
			r.Delete("/delete", cardHandler.DeleteCard)
		})
	})

	// Health check endpoint
	r.Get("/health", healthHandler.Health)

	return r
}
