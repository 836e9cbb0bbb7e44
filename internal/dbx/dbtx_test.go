package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// openCache opens a private in-memory database with a metadata table like
// the client cache uses.
func openCache(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func keys(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query(`SELECT key FROM metadata ORDER BY key`)
	require.NoError(t, err)
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		out = append(out, k)
	}
	require.NoError(t, rows.Err())
	return out
}

func put(ctx context.Context, tx DBTX, key string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES (?, 'x')`, key)
	return err
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		db := openCache(t)
		err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
			if err := put(ctx, tx, "a"); err != nil {
				return err
			}
			return put(ctx, tx, "b")
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, keys(t, db))
	})

	t.Run("error rolls back every statement", func(t *testing.T) {
		db := openCache(t)
		boom := errors.New("boom")
		err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, put(ctx, tx, "a"))
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, keys(t, db))
	})

	t.Run("statement error is returned", func(t *testing.T) {
		db := openCache(t)
		err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, put(ctx, tx, "a"))
			return put(ctx, tx, "a")
		})
		require.Error(t, err)
		assert.Empty(t, keys(t, db))
	})

	t.Run("panic rolls back and propagates", func(t *testing.T) {
		db := openCache(t)
		assert.PanicsWithValue(t, "kaput", func() {
			_ = WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
				require.NoError(t, put(ctx, tx, "a"))
				panic("kaput")
			})
		})
		assert.Empty(t, keys(t, db))
	})

	t.Run("begin failure", func(t *testing.T) {
		db := openCache(t)
		require.NoError(t, db.Close())

		called := false
		err := WithTx(ctx, db, nil, func(context.Context, DBTX) error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
	})
}
