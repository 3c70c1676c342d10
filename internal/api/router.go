// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"bankledger/internal/api/handler"
	"bankledger/internal/api/middleware"
	"bankledger/internal/auth"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	userHandler *handler.UserHandler,
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
	authHandler *handler.AuthHandler,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/", userHandler.List)
			r.Get("/{userID}", userHandler.GetByID)
			r.Put("/{userID}", userHandler.Update)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", accountHandler.Create)
			r.Get("/", accountHandler.List)
			r.Get("/{accountID}", accountHandler.GetByID)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", transactionHandler.Create)
			r.Get("/", transactionHandler.List)
			r.Get("/{transactionID}", transactionHandler.GetByID)
			r.Delete("/{transactionID}", transactionHandler.Delete)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.With(middleware.Authenticator(tokens)).Get("/authenticate", authHandler.Authenticate)
		})
	})

	return r
}
