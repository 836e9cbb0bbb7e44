package services

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/zayats-yacht/yachtclient/internal/dbx"
	"github.com/zayats-yacht/yachtclient/internal/logging"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
	"github.com/zayats-yacht/yachtclient/internal/server/repositories/repomanager"
)

// ScheduleService serves the sailing catalog.
type ScheduleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewScheduleService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ScheduleService {
	return &ScheduleService{db: db, repomanager: m, logger: logger.With("component", "schedule"), now: time.Now}
}

// Seed replaces the catalog with list.
func (s *ScheduleService) Seed(ctx context.Context, list []models.SailingWithStops) error {
	replace := func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Sailings(tx).ReplaceAll(ctx, list)
	}

	var err error
	if s.db == nil {
		err = replace(ctx, nil)
	} else {
		err = dbx.WithTx(ctx, s.db, nil, replace)
	}
	if err != nil {
		return fmt.Errorf("seed sailings: %w", err)
	}

	s.logger.Info(ctx, "sailings seeded", "count", len(list))
	return nil
}

// All returns every sailing in catalog order.
func (s *ScheduleService) All(ctx context.Context) ([]models.SailingWithStops, error) {
	return s.repomanager.Sailings(s.db).List(ctx)
}

// Nearest returns the active sailings whose first stop is still ahead,
// earliest first. Each stop carries its sailing so a card can be rendered
// from the stop alone.
func (s *ScheduleService) Nearest(ctx context.Context) ([]models.SailingWithStops, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]models.SailingWithStops, 0, len(all))
	for _, sw := range all {
		if !sw.IsActive || len(sw.ShipStops) == 0 || !sw.FirstArrival().After(now) {
			continue
		}
		sailing := sw.Sailing
		stops := slices.Clone(sw.ShipStops)
		for i := range stops {
			stops[i].Sailing = &sailing
		}
		sw.ShipStops = stops
		out = append(out, sw)
	}

	slices.SortStableFunc(out, func(a, b models.SailingWithStops) int {
		return a.FirstArrival().Compare(b.FirstArrival())
	})
	return out, nil
}
