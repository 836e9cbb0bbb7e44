package quotes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/dbx"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

// PostgresRepository keeps the request body as JSONB so new form fields do
// not need a migration.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	payload, err := json.Marshal(quote.Request)
	if err != nil {
		return nil, fmt.Errorf("encode quote: %w", err)
	}

	query :=
		`INSERT INTO quote_requests (id, email, payload)
		 VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	if err := r.db.QueryRowContext(ctx, query, quote.ID, quote.Request.Email, payload).Scan(&quote.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return quote, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Quote, error) {
	query :=
		`SELECT id, payload, created_at FROM quote_requests
		 WHERE id = $1
		 `

	quote := &models.Quote{}
	var payload []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&quote.ID, &payload, &quote.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(payload, &quote.Request); err != nil {
		return nil, fmt.Errorf("decode quote %s: %w", id, err)
	}
	return quote, nil
}
