// Package httpapi exposes the development API over HTTP with gin. Routes
// live under /api and answer in the shapes the yacht client expects.
package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/zayats-yacht/yachtclient/internal/logging"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

// UserService is the part of services.UserService the handlers use.
type UserService interface {
	Login(ctx context.Context, email, password string) (string, *models.Session, error)
	Session(ctx context.Context, token string) (*models.Session, error)
}

// QuoteService stores quote requests.
type QuoteService interface {
	Submit(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
}

// ScheduleService serves the sailing catalog.
type ScheduleService interface {
	All(ctx context.Context) ([]models.SailingWithStops, error)
	Nearest(ctx context.Context) ([]models.SailingWithStops, error)
}

// Handler groups the API handlers. Dependencies are injected via the
// constructor.
type Handler struct {
	users    UserService
	quotes   QuoteService
	schedule ScheduleService
	logger   logging.Logger
}

func NewHandler(users UserService, quotes QuoteService, schedule ScheduleService, logger logging.Logger) *Handler {
	return &Handler{users: users, quotes: quotes, schedule: schedule, logger: logger.With("component", "http")}
}

// RegisterRoutes registers the API routes on rg, which is mounted at /api.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/csrf", h.CSRFToken)
	rg.POST("/auth/callback/credentials", h.SignIn)
	rg.GET("/auth/session", h.GetSession)
	rg.POST("/auth/signout", h.SignOut)

	rg.GET("/sailings", h.Sailings)
	rg.GET("/schedule/nearest", h.NearestSailings)

	rg.POST("/quote-request", h.requireSession, h.QuoteRequest)
}
