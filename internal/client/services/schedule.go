package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zayats-yacht/yachtclient/internal/client/client"
	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/client/repositories"
	"github.com/zayats-yacht/yachtclient/internal/client/repositories/metadata"
	"github.com/zayats-yacht/yachtclient/internal/dbx"
	"github.com/zayats-yacht/yachtclient/internal/logging"
)

// ScheduleService loads the nearest sailings. A successful fetch is cached
// locally; when the API cannot be reached the cached copy is served with
// Offline set.
type ScheduleService interface {
	NearestSailings(ctx context.Context) models.ScheduleState
}

type scheduleService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
}

// NewScheduleService binds the service to the API client and the cache
// database. db may be nil, which disables caching.
func NewScheduleService(c client.Client, db *sql.DB, logger logging.Logger) ScheduleService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &scheduleService{client: c, db: db, logger: logger.With("component", "schedule"), now: time.Now}
}

func (s *scheduleService) NearestSailings(ctx context.Context) models.ScheduleState {
	list, err := s.fetch(ctx)
	if err == nil {
		fetchedAt := s.now().UTC()
		if err := s.store(ctx, list, fetchedAt); err != nil {
			s.logger.Warn(ctx, "failed to cache sailings", "err", err)
		}
		return models.ScheduleState{Schedule: list, FetchedAt: fetchedAt}
	}

	s.logger.Warn(ctx, "failed to get sailings", "err", err)
	if errors.Is(err, client.ErrUnavailable) {
		if st, ok := s.cached(ctx); ok {
			return st
		}
	}
	return models.ScheduleState{Error: MsgSailingsFailed}
}

var errSailingsRejected = errors.New("sailings request rejected")

func (s *scheduleService) fetch(ctx context.Context) ([]models.SailingWithStops, error) {
	res, err := s.client.NearestSailings(ctx)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: %s", errSailingsRejected, res.Message)
	}

	list := make([]models.SailingWithStops, 0)
	if res.HasData() {
		if err := res.DecodeData(&list); err != nil {
			return nil, fmt.Errorf("decode sailings: %w", err)
		}
	}
	return list, nil
}

func (s *scheduleService) store(ctx context.Context, list []models.SailingWithStops, at time.Time) error {
	if s.db == nil {
		return nil
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repos := repositories.New(tx)
		if err := repos.Sailings.ReplaceAll(ctx, list); err != nil {
			return err
		}
		return repos.Metadata.SetTime(ctx, metadata.KeyScheduleFetchedAt, at)
	})
}

func (s *scheduleService) cached(ctx context.Context) (models.ScheduleState, bool) {
	if s.db == nil {
		return models.ScheduleState{}, false
	}
	repos := repositories.New(s.db)

	fetchedAt, ok, err := repos.Metadata.GetTime(ctx, metadata.KeyScheduleFetchedAt)
	if err != nil || !ok {
		if err != nil {
			s.logger.Warn(ctx, "failed to read cache timestamp", "err", err)
		}
		return models.ScheduleState{}, false
	}

	list, err := repos.Sailings.List(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to read cached sailings", "err", err)
		return models.ScheduleState{}, false
	}

	s.logger.Info(ctx, "serving cached sailings", "count", len(list), "fetched_at", fetchedAt)
	return models.ScheduleState{Schedule: list, Offline: true, FetchedAt: fetchedAt}, true
}
