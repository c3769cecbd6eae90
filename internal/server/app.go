// Package server wires configuration, storage, services and the HTTP
// boundary together and runs them until the process is told to stop.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/jitsunotes/internal/logging"
	"github.com/dmitrijs2005/jitsunotes/internal/server/api"
	"github.com/dmitrijs2005/jitsunotes/internal/server/config"
	"github.com/dmitrijs2005/jitsunotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jitsunotes/internal/server/services"
	"github.com/dmitrijs2005/jitsunotes/internal/server/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *storage.Database
	server *api.Server
}

// NewApp opens the store, applies migrations and builds the HTTP server.
// The returned App owns the pool; call Close when done.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewSQLRepositoryManager()
	if err := rm.RunMigrations(ctx, db.DB.DB, db.Dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	us := services.NewUserService(db.DB, rm, cfg, logger)
	ns := services.NewNotesService(db.DB, rm, logger)

	srv := api.NewServer(api.Options{
		Address:         cfg.EndpointAddrHTTP,
		SecureCookie:    cfg.SecureCookie,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger, us, ns, api.NewMetrics(reg))

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "database", app.db.Dialect)
	app.initSignalHandler(ctx, cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}

// Close releases the database pool.
func (app *App) Close() error {
	app.logger.Info(context.Background(), "Closing database...")
	return app.db.Close()
}
