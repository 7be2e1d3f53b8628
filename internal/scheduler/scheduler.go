// Package scheduler wires periodic background jobs. The only job today is
// the nightly inventory consistency check.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mmqops/booking-api/internal/domain"
)

type InventoryChecker interface {
	RunCheck(ctx context.Context) (domain.ConsistencyReport, error)
}

type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
	}
}

// AddInventoryCheck registers the consistency check on a cron-style
// schedule (e.g. "0 4 * * *" for 4am daily). No distributed lock: the check
// only reads counts and corrects one denormalized counter per row, so an
// overlapping run converges to the same state.
func (s *Scheduler) AddInventoryCheck(spec string, checker InventoryChecker) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		report, err := checker.RunCheck(ctx)
		if err != nil {
			zap.L().Error("scheduled inventory check failed", zap.Error(err))
			return
		}

		zap.L().Info("scheduled inventory check completed",
			zap.Int("total_checked", report.TotalChecked),
			zap.Int("inconsistencies_found", report.InconsistenciesFound),
			zap.Int("auto_fixed", report.AutoFixed),
			zap.Int64("execution_time_ms", report.ExecutionTimeMS),
		)
	})
	if err != nil {
		return fmt.Errorf("s.cron.AddFunc -> %w", err)
	}

	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
