// Package repomanager vends repository implementations bound to a
// dbx.DBTX, so services can run the same code against the pool or inside a
// transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/zayats-yacht/yachtclient/internal/dbx"
	"github.com/zayats-yacht/yachtclient/internal/server/repositories/quotes"
	"github.com/zayats-yacht/yachtclient/internal/server/repositories/sailings"
	"github.com/zayats-yacht/yachtclient/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Quotes(db dbx.DBTX) quotes.Repository
	Sailings(db dbx.DBTX) sailings.Repository
}
