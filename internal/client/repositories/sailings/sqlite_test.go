package sailings

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/dbx"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE sailings (
  id       TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  name     TEXT NOT NULL,
  payload  BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func sailing(id, name string, arrival time.Time) models.SailingWithStops {
	return models.SailingWithStops{
		Sailing: models.Sailing{ID: id, Name: name, IsActive: true},
		ShipStops: []models.ShipStop{{
			ID:            id + "-1",
			SailingID:     id,
			ArrivalOn:     arrival,
			DepartureOn:   arrival.Add(48 * time.Hour),
			Miles:         1200,
			DeparturePort: &models.Port{ID: "p1", PortName: "Palma de Mallorca"},
		}},
	}
}

func TestReplaceAllAndList_KeepsOrder(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	at := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	in := []models.SailingWithStops{
		sailing("s2", "Med to Caribbean", at),
		sailing("s1", "Caribbean to Med", at.AddDate(0, 1, 0)),
	}
	require.NoError(t, r.ReplaceAll(ctx, in))

	got, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestReplaceAll_DropsPreviousRows(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	at := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, r.ReplaceAll(ctx, []models.SailingWithStops{sailing("a", "A", at), sailing("b", "B", at)}))
	require.NoError(t, r.ReplaceAll(ctx, []models.SailingWithStops{sailing("c", "C", at)}))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestList_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	got, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestReplaceAll_RolledBackInsideTx(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	at := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, NewSQLiteRepository(db).ReplaceAll(ctx, []models.SailingWithStops{sailing("keep", "Keep", at)}))

	boom := errors.New("boom")
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := NewSQLiteRepository(tx).ReplaceAll(ctx, nil); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].ID)
}

func TestList_ErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.List(context.Background())
	require.ErrorContains(t, err, "failed to select sailings")
}
