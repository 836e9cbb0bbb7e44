package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u, err := repo.Create(ctx, &models.User{ID: "u-1", Email: "Alice@Example.com", PasswordHash: []byte("h")})
	require.NoError(t, err)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = repo.Create(ctx, &models.User{ID: "u-2", Email: "alice@example.com"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := repo.GetByEmail(ctx, "alice@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	got.Email = "mutated"
	again, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice@Example.com", again.Email)

	_, err = repo.GetByID(ctx, "u-2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.GetByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
