package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/notifier"
)

const (
	colorWarning = 0xf59e0b
	colorOK      = 0x10b981

	// At most this many inconsistency details make it into the alert.
	maxNotifiedDetails = 5
)

type ReservationTotals interface {
	CountedParticipantTotals(ctx context.Context) (map[uint]int, error)
}

// InventoryService reconciles each event's cached current_participants
// counter with the total derived from its reservations. Runs nightly under
// cron and on demand through the admin endpoint.
type InventoryService struct {
	events       ScheduleEventRepository
	reservations ReservationTotals
	notif        notifier.Notifier
}

func NewInventoryService(events ScheduleEventRepository, reservations ReservationTotals, notif notifier.Notifier) *InventoryService {
	return &InventoryService{
		events:       events,
		reservations: reservations,
		notif:        notif,
	}
}

// RunCheck scans every non-cancelled event, corrects drifted counters to the
// reservation-derived truth (never the reverse) and reports what it found.
// A scan or fix failure aborts the run; notification failures are logged
// and do not affect the result.
func (s *InventoryService) RunCheck(ctx context.Context) (domain.ConsistencyReport, error) {
	start := time.Now()

	events, err := s.events.FindNonCancelled(ctx)
	if err != nil {
		return domain.ConsistencyReport{}, fmt.Errorf("s.events.FindNonCancelled -> %w", err)
	}

	totals, err := s.reservations.CountedParticipantTotals(ctx)
	if err != nil {
		return domain.ConsistencyReport{}, fmt.Errorf("s.reservations.CountedParticipantTotals -> %w", err)
	}

	report := domain.ConsistencyReport{
		TotalChecked: len(events),
		Details:      []domain.InconsistencyDetail{},
	}

	for _, event := range events {
		actual := totals[event.ID] // events without reservations sum to 0

		if actual == event.CurrentParticipants {
			continue
		}

		report.InconsistenciesFound++
		report.Details = append(report.Details, domain.InconsistencyDetail{
			ScenarioTitle: event.Scenario,
			StoreName:     event.Venue,
			Date:          event.Date,
			StartTime:     event.StartTime,
			StoredCount:   event.CurrentParticipants,
			ActualCount:   actual,
			Difference:    actual - event.CurrentParticipants,
		})

		if err = s.events.SetCurrentParticipants(ctx, event.ID, actual); err != nil {
			return domain.ConsistencyReport{}, fmt.Errorf("s.events.SetCurrentParticipants -> %w", err)
		}
		report.AutoFixed++
	}

	report.ExecutionTimeMS = time.Since(start).Milliseconds()

	if report.InconsistenciesFound > 0 {
		if err = s.notif.Notify(ctx, buildCheckMessage(report)); err != nil {
			zap.L().Error("inventory check notification failed", zap.Error(err))
		}
	}

	return report, nil
}

func buildCheckMessage(report domain.ConsistencyReport) notifier.Message {
	color := colorOK
	if report.InconsistenciesFound > 0 {
		color = colorWarning
	}

	msg := notifier.Message{
		Title:     "🔍 在庫整合性チェック結果",
		Color:     color,
		Timestamp: time.Now(),
		Fields: []notifier.Field{
			{Name: "📊 チェック対象", Value: fmt.Sprintf("%v イベント", report.TotalChecked), Inline: true},
			{Name: "⚠️ 不整合検出", Value: fmt.Sprintf("%v イベント", report.InconsistenciesFound), Inline: true},
			{Name: "🔧 自動修正", Value: fmt.Sprintf("%v イベント", report.AutoFixed), Inline: true},
			{Name: "⏱️ 実行時間", Value: fmt.Sprintf("%vms", report.ExecutionTimeMS), Inline: true},
		},
	}

	if len(report.Details) == 0 {
		return msg
	}

	lines := make([]string, 0, maxNotifiedDetails)
	for i, d := range report.Details {
		if i == maxNotifiedDetails {
			break
		}
		lines = append(lines, fmt.Sprintf(
			"**%s** (%s)\n日時: %s %s\n保存値: %d → 実際: %d (差分: %+d)",
			d.ScenarioTitle, d.StoreName, d.Date, d.StartTime,
			d.StoredCount, d.ActualCount, d.Difference,
		))
	}

	value := strings.Join(lines, "\n\n")
	if extra := len(report.Details) - maxNotifiedDetails; extra > 0 {
		value += fmt.Sprintf("\n\n... 他 %d 件の不整合", extra)
	}

	msg.Fields = append(msg.Fields, notifier.Field{Name: "📝 不整合の詳細", Value: value})

	return msg
}
