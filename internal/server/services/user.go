// Package services contains the API server's business logic. UserService
// verifies credentials and issues and resolves session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/logging"
	"github.com/zayats-yacht/yachtclient/internal/server/auth"
	"github.com/zayats-yacht/yachtclient/internal/server/config"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
	"github.com/zayats-yacht/yachtclient/internal/server/repositories/repomanager"
)

type UserService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	jwtSecret       []byte
	sessionLifetime time.Duration
	logger          logging.Logger
	// dummyHash is compared against when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

// NewUserService constructs a UserService. db may be nil when m is the
// in-memory manager.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) (*UserService, error) {
	dummy, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("init password hashing: %w", err)
	}
	return &UserService{
		db:              db,
		repomanager:     m,
		jwtSecret:       []byte(cfg.SecretKey),
		sessionLifetime: cfg.SessionLifetime,
		logger:          logger.With("component", "users"),
		dummyHash:       dummy,
	}, nil
}

// EnsureUser creates a user with the given credentials unless the email is
// already registered, and returns the stored user either way.
func (s *UserService) EnsureUser(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	email = normalizeEmail(email)

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{ID: uuid.NewString(), Email: email, PasswordHash: hash})
	if errors.Is(err, common.ErrorAlreadyExists) {
		return repo.GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user created", "user_id", user.ID)
	return user, nil
}

// Login verifies the credentials and returns a signed session token and
// the session it stands for.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.Session, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(s.dummyHash, password)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, expires, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.sessionLifetime)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return token, &models.Session{User: user, ExpiresAt: expires}, nil
}

// Session resolves a session token.
func (s *UserService) Session(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return &models.Session{User: user, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// SessionLifetime is how long tokens issued by Login stay valid.
func (s *UserService) SessionLifetime() time.Duration {
	return s.sessionLifetime
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
