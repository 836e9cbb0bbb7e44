package repomanager

import (
	"context"
	"database/sql"

	"github.com/zayats-yacht/yachtclient/internal/dbx"
	"github.com/zayats-yacht/yachtclient/internal/server/repositories/quotes"
	"github.com/zayats-yacht/yachtclient/internal/server/repositories/sailings"
	"github.com/zayats-yacht/yachtclient/internal/server/repositories/users"
)

// InMemoryRepositoryManager hands out one shared set of in-memory
// repositories whatever DBTX is passed; there is nothing to migrate.
type InMemoryRepositoryManager struct {
	users    *users.MemoryRepository
	quotes   *quotes.MemoryRepository
	sailings *sailings.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		quotes:   quotes.NewMemoryRepository(),
		sailings: sailings.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Quotes(dbx.DBTX) quotes.Repository {
	return m.quotes
}

func (m *InMemoryRepositoryManager) Sailings(dbx.DBTX) sailings.Repository {
	return m.sailings
}
