package sailings

import (
	"context"
	"slices"
	"sync"

	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

type MemoryRepository struct {
	mu   sync.RWMutex
	list []models.SailingWithStops
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) ReplaceAll(ctx context.Context, list []models.SailingWithStops) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = cloneList(list)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.SailingWithStops, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := cloneList(r.list)
	if out == nil {
		out = make([]models.SailingWithStops, 0)
	}
	return out, nil
}

func cloneList(list []models.SailingWithStops) []models.SailingWithStops {
	if list == nil {
		return nil
	}
	out := make([]models.SailingWithStops, len(list))
	for i, s := range list {
		s.ShipStops = slices.Clone(s.ShipStops)
		out[i] = s
	}
	return out
}
