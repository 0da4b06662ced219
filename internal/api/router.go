// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"trackhub/internal/api/handler"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	WalletHandler      *handler.WalletHandler
	TransactionHandler *handler.TransactionHandler
	TransferHandler    *handler.TransferHandler
	CategoryHandler    *handler.CategoryHandler
	AuthMiddleware     func(http.Handler) http.Handler
	CORSOrigins        []string
	Logger             *slog.Logger
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// All ledger routes require an authenticated tenant.
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware)

		r.Route("/wallets", func(r chi.Router) {
			r.Post("/", deps.WalletHandler.Create)
			r.Get("/", deps.WalletHandler.List)
			r.Get("/{walletID}", deps.WalletHandler.Get)
			r.Delete("/{walletID}", deps.WalletHandler.Delete)
			r.Get("/{walletID}/transactions", deps.WalletHandler.GetTransactionHistory)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", deps.TransactionHandler.Create)
			r.Put("/{transactionID}", deps.TransactionHandler.Update)
			r.Delete("/{transactionID}", deps.TransactionHandler.Delete)
		})

		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", deps.TransferHandler.Create)
			r.Get("/", deps.TransferHandler.List)
			r.Put("/{transferID}", deps.TransferHandler.Update)
			r.Delete("/{transferID}", deps.TransferHandler.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", deps.CategoryHandler.Create)
			r.Get("/", deps.CategoryHandler.List)
			r.Delete("/{categoryID}", deps.CategoryHandler.Delete)
		})
	})

	return r
}
