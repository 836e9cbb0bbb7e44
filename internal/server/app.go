// Package server wires and runs the development API server: storage,
// services, the gin router and graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/zayats-yacht/yachtclient/internal/logging"
	"github.com/zayats-yacht/yachtclient/internal/server/config"
	"github.com/zayats-yacht/yachtclient/internal/server/httpapi"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
	"github.com/zayats-yacht/yachtclient/internal/server/repositories/repomanager"
	"github.com/zayats-yacht/yachtclient/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *services.UserService
	scheduleService *services.ScheduleService
	handler         http.Handler
	shuttingDown    atomic.Bool
}

// NewApp opens storage (PostgreSQL when a DSN is configured, memory
// otherwise), seeds the admin user and the sailing catalog, and builds the
// router.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)

	if c.DatabaseDSN != "" {
		var err error
		db, err = repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		pm := repomanager.NewPostgresRepositoryManager()
		if err := pm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db migrations error: %w", err)
		}
		rm = pm
		logger.Info(ctx, "using postgres storage")
	} else {
		rm = repomanager.NewInMemoryRepositoryManager()
		logger.Info(ctx, "using in-memory storage")
	}

	app, err := newApp(c, logger, db, rm)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	if err := app.seed(ctx); err != nil {
		app.close()
		return nil, err
	}
	return app, nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) (*App, error) {
	us, err := services.NewUserService(db, rm, c, logger)
	if err != nil {
		return nil, err
	}
	qs := services.NewQuoteService(db, rm, logger)
	ss := services.NewScheduleService(db, rm, logger)

	app := &App{config: c, logger: logger, db: db, userService: us, scheduleService: ss}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gin.SetMode(gin.ReleaseMode)
	app.handler = httpapi.NewRouter(httpapi.NewHandler(us, qs, ss, logger), httpapi.RouterOptions{
		Logger:   logger,
		Registry: reg,
		Ready:    func() bool { return !app.shuttingDown.Load() },
	})
	return app, nil
}

func (app *App) seed(ctx context.Context) error {
	if _, err := app.userService.EnsureUser(ctx, app.config.AdminEmail, app.config.AdminPassword); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	var (
		list []models.SailingWithStops
		err  error
	)
	if app.config.SailingsFile != "" {
		list, err = services.LoadSailings(app.config.SailingsFile)
		if err != nil {
			return err
		}
	} else {
		list = services.DefaultSailings(time.Now())
	}
	return app.scheduleService.Seed(ctx, list)
}

func (app *App) close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close error", "err", err)
		}
	}
}

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives, then
// fails readiness and shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.close()

	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.ListenAddr, err)
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting API server", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "shutdown signal received")
	app.shuttingDown.Store(true)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "http server shutdown error", "err", err)
		return err
	}
	app.logger.Info(shutdownCtx, "http server shutdown complete")
	return nil
}
