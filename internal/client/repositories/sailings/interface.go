package sailings

import (
	"context"

	"github.com/zayats-yacht/yachtclient/internal/client/models"
)

type Repository interface {
	ReplaceAll(ctx context.Context, list []models.SailingWithStops) error
	List(ctx context.Context) ([]models.SailingWithStops, error)
}
