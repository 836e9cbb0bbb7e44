package sailings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zayats-yacht/yachtclient/internal/dbx"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

// PostgresRepository stores each sailing, stops included, as one JSONB
// row. ReplaceAll is not atomic on its own; run it inside dbx.WithTx.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ReplaceAll(ctx context.Context, list []models.SailingWithStops) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sailings`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	query :=
		`INSERT INTO sailings (id, position, payload)
		 VALUES ($1, $2, $3)
		 `

	for i, s := range list {
		payload, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode sailing %s: %w", s.ID, err)
		}
		if _, err := r.db.ExecContext(ctx, query, s.ID, i, payload); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.SailingWithStops, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM sailings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := make([]models.SailingWithStops, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		var s models.SailingWithStops
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, fmt.Errorf("decode sailing: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}
