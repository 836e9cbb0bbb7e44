// Package sailings stores the sailing catalog served by the schedule
// endpoints.
package sailings

import (
	"context"

	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

// Repository keeps sailings in catalog order.
type Repository interface {
	ReplaceAll(ctx context.Context, list []models.SailingWithStops) error
	List(ctx context.Context) ([]models.SailingWithStops, error)
}
