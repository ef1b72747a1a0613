package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/phrazzld/eazybank-api/internal/cache"
	"github.com/phrazzld/eazybank-api/internal/config"
	"github.com/phrazzld/eazybank-api/internal/platform/memory"
	"github.com/phrazzld/eazybank-api/internal/platform/postgres"
	"github.com/phrazzld/eazybank-api/internal/service"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// application holds all the dependencies for the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	cache  cache.Cache

	// Store interfaces
	customerStore store.CustomerStore
	accountStore  store.AccountStore
	loanStore     store.LoanStore
	cardStore     store.CardStore

	// Service interfaces
	accountService service.AccountService
	loanService    service.LoanService
	cardService    service.CardService
}

// newApplication creates a new application instance with all dependencies
// initialized. A nil db selects the in-memory stores; a nil c disables the
// loan and card cache.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	c cache.Cache,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		cache:  c,
	}

	if db != nil {
		if err := postgres.Migrate(ctx, db, logger); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		app.customerStore = postgres.NewPostgresCustomerStore(db, logger)
		app.accountStore = postgres.NewPostgresAccountStore(db, logger)
		app.loanStore = postgres.NewPostgresLoanStore(db, logger)
		app.cardStore = postgres.NewPostgresCardStore(db, logger)
	} else {
		app.customerStore = memory.NewCustomerStore(nil)
		app.accountStore = memory.NewAccountStore(nil)
		app.loanStore = memory.NewLoanStore(nil)
		app.cardStore = memory.NewCardStore(nil)
	}

	if c != nil {
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		app.loanStore = cache.NewLoanStore(app.loanStore, c, ttl, logger)
		app.cardStore = cache.NewCardStore(app.cardStore, c, ttl, logger)
		logger.Info("Loan and card lookups are cached", "ttl", ttl.String())
	}

	numbers := service.NewRandomNumbers(nil)

	var err error
	app.accountService, err = service.NewAccountService(app.customerStore, app.accountStore, numbers, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	app.loanService, err = service.NewLoanService(app.loanStore, numbers, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create loan service: %w", err)
	}

	app.cardService, err = service.NewCardService(app.cardStore, numbers, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns when ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases the database and cache connections.
func (app *application) cleanup() {
	if closer, ok := app.cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			app.logger.Error("Error closing cache connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
