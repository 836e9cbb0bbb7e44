package quotes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+quote_requests\s*\(id,\s*email,\s*payload\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+created_at\s*$`
	getQuery    = `(?s)^SELECT\s+id,\s*payload,\s*created_at\s+FROM\s+quote_requests\s+WHERE\s+id\s*=\s*\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQuery).
		WithArgs("q-1", "jo@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	q, err := repo.Create(context.Background(), &models.Quote{ID: "q-1", Request: models.QuoteRequest{Email: "jo@example.com"}})
	require.NoError(t, err)
	assert.Equal(t, created, q.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Quote{ID: "q-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")
}

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(getQuery).WithArgs("q-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "payload", "created_at"}).
			AddRow("q-1", []byte(`{"firstName":"Jo","email":"jo@example.com"}`), created))

	q, err := repo.Get(context.Background(), "q-1")
	require.NoError(t, err)
	assert.Equal(t, "Jo", q.Request.FirstName)
	assert.Equal(t, "jo@example.com", q.Request.Email)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQuery).WithArgs("q-9").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "q-9")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGet_BadPayload(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQuery).WithArgs("q-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "payload", "created_at"}).
			AddRow("q-1", []byte(`{`), time.Now()))

	_, err := repo.Get(context.Background(), "q-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode quote q-1")
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	q, err := repo.Create(ctx, &models.Quote{ID: "q-1", Request: models.QuoteRequest{FirstName: "Jo"}})
	require.NoError(t, err)
	assert.False(t, q.CreatedAt.IsZero())

	_, err = repo.Create(ctx, &models.Quote{ID: "q-1"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := repo.Get(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, "Jo", got.Request.FirstName)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
