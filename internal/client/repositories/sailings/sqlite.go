package sailings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/dbx"
)

// SQLiteRepository keeps each sailing as a JSON blob next to its position
// in the list.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.SailingWithStops) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sailings`); err != nil {
		return fmt.Errorf("failed to clear sailings: %w", err)
	}

	for i, s := range list {
		payload, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to encode sailing %s: %w", s.ID, err)
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO sailings (id, position, name, payload) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET position = excluded.position,
				name = excluded.name,
				payload = excluded.payload
		`, s.ID, i, s.Name, payload)
		if err != nil {
			return fmt.Errorf("failed to insert sailing %s: %w", s.ID, err)
		}
	}
	return nil
}

// List returns the cached sailings in the order they were stored.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.SailingWithStops, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM sailings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to select sailings: %w", err)
	}
	defer rows.Close()

	result := make([]models.SailingWithStops, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan sailing row: %w", err)
		}
		var s models.SailingWithStops
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, fmt.Errorf("failed to decode cached sailing: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sailings: %w", err)
	}
	return result, nil
}
