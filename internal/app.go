// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "bankledger/internal/api"
	"bankledger/internal/api/handler"
	"bankledger/internal/auth"
	"bankledger/internal/config"
	"bankledger/internal/repository"
	"bankledger/internal/repository/postgres"
	"bankledger/internal/service"
	"bankledger/internal/util"
	"bankledger/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB
	Tokens *auth.TokenManager

	// Repositories
	UserRepository        repository.UserRepository
	AccountRepository     repository.AccountRepository
	TransactionRepository repository.TransactionRepository

	// Services
	UserService    service.UserService
	AccountService service.AccountService
	LedgerService  service.LedgerService
	AuthService    service.AuthService

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

	// 3. Connect to Database and ensure the schema exists
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.AccountRepository = postgres.NewAccountRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	app.Tokens = auth.NewTokenManager(app.Config.JWTSecret, app.Config.JWTTTL)
	app.UserService = service.NewUserService(
		app.DB, app.DB,
		app.UserRepository,
		db.BeginTx, db.CommitTx, db.RollbackTx,
	)
	app.AccountService = service.NewAccountService(
		app.DB, app.DB,
		app.UserRepository,
		app.AccountRepository,
		db.BeginTx, db.CommitTx, db.RollbackTx,
	)
	app.LedgerService = service.NewLedgerService(
		app.DB, app.DB,
		app.AccountRepository,
		app.TransactionRepository,
		db.BeginTx, db.CommitTx, db.RollbackTx,
	)
	app.AuthService = service.NewAuthService(app.DB, app.UserRepository, app.Tokens)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	userHandler := handler.NewUserHandler(app.UserService, app.Logger)
	accountHandler := handler.NewAccountHandler(app.AccountService, app.Logger)
	transactionHandler := handler.NewTransactionHandler(app.LedgerService, app.Logger)
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	app.HTTPHandler = router.NewRouter(userHandler, accountHandler, transactionHandler, authHandler, app.Tokens, app.Logger)
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
