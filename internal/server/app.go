// Package server assembles the eldercare REST server: it opens the database,
// applies migrations, builds the services and runs the HTTP server until a
// termination signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/eldercare/internal/logging"
	"github.com/dmitrijs2005/eldercare/internal/server/config"
	"github.com/dmitrijs2005/eldercare/internal/server/db"
	"github.com/dmitrijs2005/eldercare/internal/server/httpapi"
	"github.com/dmitrijs2005/eldercare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/eldercare/internal/server/services"
	"github.com/jmoiron/sqlx"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sqlx.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	conn, err := db.Connect(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, conn.DB); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(conn, rm, c)
	hs := services.NewHealthService(conn)

	handler := httpapi.NewHandler(us, hs, logger.With("module", "httpapi"))
	router := httpapi.NewRouter(handler, logger, c.StaticDir)

	return &App{
		config: c,
		logger: logger,
		db:     conn,
		server: httpapi.NewServer(c.HTTPAddr, router, logger, c.ShutdownTimeout),
	}, nil
}

// Run blocks until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT is received.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	err := app.server.Run(ctx)

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close error", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
