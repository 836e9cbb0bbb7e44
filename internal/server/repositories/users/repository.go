// Package users stores API user accounts.
package users

import (
	"context"

	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

// Repository persists users. Lookups of an absent user return
// common.ErrorNotFound; creating a duplicate email returns
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
