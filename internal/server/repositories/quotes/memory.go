package quotes

import (
	"context"
	"sync"
	"time"

	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	quotes map[string]models.Quote
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{quotes: map[string]models.Quote{}}
}

func (r *MemoryRepository) Create(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.quotes[quote.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	quote.CreatedAt = time.Now().UTC()
	r.quotes[quote.ID] = *quote
	return quote, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.quotes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &q, nil
}
