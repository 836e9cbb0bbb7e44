package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/zayats-yacht/yachtclient/internal/client/client"
	"github.com/zayats-yacht/yachtclient/internal/client/config"
	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/client/repositories"
	"github.com/zayats-yacht/yachtclient/internal/client/repositories/metadata"
	"github.com/zayats-yacht/yachtclient/internal/client/services"
	"github.com/zayats-yacht/yachtclient/internal/logging"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	apiClient       client.Client
	db              *sql.DB
	authService     services.AuthService
	scheduleService services.ScheduleService
	quoteService    services.QuoteService
	metadata        metadata.Repository

	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	session  models.Session
	current  string
	redirect string
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := repositories.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		logger.Error(ctx, "error initializing cache database", "err", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:    c,
		logger:    logger,
		apiClient: apiClient,
		db:        db,
		metadata:  repositories.New(db).Metadata,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		current:   PathLanding,
	}
	a.authService = services.NewAuthService(apiClient, a, a.metadata, logger)
	a.scheduleService = services.NewScheduleService(apiClient, db, logger)
	a.quoteService = services.NewQuoteService(apiClient, logger)
	return a, nil
}

// Navigate records where to go once the running command returns.
func (a *App) Navigate(path string) {
	a.mu.Lock()
	a.redirect = path
	a.mu.Unlock()
}

func (a *App) takeRedirect() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := a.redirect
	a.redirect = ""
	return p
}

// onSession keeps the latest auth snapshot for the prompt.
func (a *App) onSession(s models.Session) {
	a.mu.Lock()
	a.session = s
	a.mu.Unlock()
}

func (a *App) isLoggedIn() bool {
	return a.authService.State().IsAuthenticated
}

func (a *App) Run(ctx context.Context) {
	defer a.close()
	a.Root(ctx)
}

func (a *App) close() {
	if a.apiClient != nil {
		_ = a.apiClient.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
