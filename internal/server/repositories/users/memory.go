package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

// MemoryRepository keeps users in a map. Emails compare case-insensitively,
// matching the unique index a real deployment would use.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    map[string]*models.User{},
		byEmail: map[string]string{},
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.CreatedAt = time.Now().UTC()
	r.byID[stored.ID] = &stored
	r.byEmail[key] = stored.ID

	user.CreatedAt = stored.CreatedAt
	return user, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.byID[id]
	return &u, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *stored
	return &u, nil
}
