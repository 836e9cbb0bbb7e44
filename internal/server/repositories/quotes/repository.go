// Package quotes stores accepted quote requests.
package quotes

import (
	"context"

	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, quote *models.Quote) (*models.Quote, error)
	Get(ctx context.Context, id string) (*models.Quote, error)
}
