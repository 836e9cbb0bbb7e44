package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/zayats-yacht/yachtclient/internal/logging"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
	"github.com/zayats-yacht/yachtclient/internal/server/repositories/repomanager"
	"github.com/zayats-yacht/yachtclient/internal/validation"
)

// ValidationError carries the rejected fields in form order.
type ValidationError struct {
	Issues []validation.Issue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d field(s)", ErrValidation, len(e.Issues))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type QuoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewQuoteService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *QuoteService {
	return &QuoteService{db: db, repomanager: m, logger: logger.With("component", "quotes")}
}

// Submit validates req and stores it. A rejected request returns a
// *ValidationError.
func (s *QuoteService) Submit(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	issues, err := validation.Struct(req, validation.QuoteMessages)
	if err != nil {
		return nil, fmt.Errorf("validate quote: %w", err)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	q, err := s.repomanager.Quotes(s.db).Create(ctx, &models.Quote{ID: uuid.NewString(), Request: req})
	if err != nil {
		return nil, fmt.Errorf("error storing quote: %w", err)
	}

	s.logger.Info(ctx, "quote request stored", "quote_id", q.ID)
	return q, nil
}
