package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

const (
	insertQuery  = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*email,\s*name,\s*image,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*ON\s+CONFLICT\s*\(email\)\s*DO\s+NOTHING\s*RETURNING\s+created_at\s*$`
	byEmailQuery = `(?s)^SELECT\s+id,\s*email,\s*name,\s*image,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
	byIDQuery    = `(?s)^SELECT\s+id,\s*email,\s*name,\s*image,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
)

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQuery).
		WithArgs("u-1", "alice@example.com", nil, nil, []byte("hash")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	got, err := repo.Create(context.Background(), &models.User{ID: "u-1", Email: "alice@example.com", PasswordHash: []byte("hash")})
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}))

	_, err := repo.Create(context.Background(), &models.User{ID: "u-1", Email: "alice@example.com"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{ID: "u-1", Email: "alice@example.com"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "name", "image", "password_hash", "created_at"}).
		AddRow("u-1", "alice@example.com", "Alice", nil, []byte("hash"), created)
	mock.ExpectQuery(byEmailQuery).WithArgs("alice@example.com").WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Alice", *got.Name)
	assert.Nil(t, got.Image)
	assert.Equal(t, []byte("hash"), got.PasswordHash)
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byEmailQuery).WithArgs("ghost@example.com").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byIDQuery).WithArgs("u-1").WillReturnError(errors.New("db err"))

	_, err := repo.GetByID(context.Background(), "u-1")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db err`), err.Error())
}
