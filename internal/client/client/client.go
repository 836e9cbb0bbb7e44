package client

import (
	"context"

	"github.com/zayats-yacht/yachtclient/internal/client/models"
)

// Client is the API surface used by the services.
type Client interface {
	GetCSRFToken(ctx context.Context) (string, error)
	SignInWithCredentials(ctx context.Context, csrfToken string, creds models.Credentials) (int, error)
	GetSession(ctx context.Context) (*models.SessionResponse, error)
	SignOut(ctx context.Context, csrfToken string) (int, error)
	Sailings(ctx context.Context) (models.ActionResult, error)
	NearestSailings(ctx context.Context) (models.ActionResult, error)
	PostQuoteRequest(ctx context.Context, q models.QuoteRequest) (models.ActionResult, error)
	Close() error
}
