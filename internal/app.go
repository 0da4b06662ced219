// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"trackhub/internal/api"
	"trackhub/internal/api/handler"
	"trackhub/internal/api/middleware"
	"trackhub/internal/config"
	"trackhub/internal/repository"
	"trackhub/internal/repository/postgres"
	"trackhub/internal/service"
	"trackhub/internal/util"
	"trackhub/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository        repository.UserRepository
	WalletRepository      repository.WalletRepository
	TransactionRepository repository.TransactionRepository
	TransferRepository    repository.TransferRepository
	CategoryRepository    repository.CategoryRepository

	// Services
	LedgerService   service.LedgerService
	WalletService   service.WalletService
	CategoryService service.CategoryService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DBConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.WalletRepository = postgres.NewWalletRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.TransferRepository = postgres.NewTransferRepository(app.DB)
	app.CategoryRepository = postgres.NewCategoryRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.LedgerService = service.NewLedgerService(app.DB, app.WalletRepository, app.TransactionRepository, app.TransferRepository, app.Logger)
	app.WalletService = service.NewWalletService(app.DB, app.WalletRepository, app.TransactionRepository, app.TransferRepository, app.Logger)
	app.CategoryService = service.NewCategoryService(app.DB, app.CategoryRepository, app.Logger)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	app.HTTPHandler = api.NewRouter(api.RouterDeps{
		WalletHandler:      handler.NewWalletHandler(app.WalletService, app.Logger),
		TransactionHandler: handler.NewTransactionHandler(app.LedgerService, app.Logger),
		TransferHandler:    handler.NewTransferHandler(app.LedgerService, app.WalletService, app.Logger),
		CategoryHandler:    handler.NewCategoryHandler(app.CategoryService, app.Logger),
		AuthMiddleware:     middleware.Auth(app.Config.JWTSecret, app.UserRepository, app.DB, app.Logger),
		CORSOrigins:        app.Config.CORSOrigins,
		Logger:             app.Logger,
	})
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
