package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/notifier"
)

type fakeTotals struct {
	totals map[uint]int
}

func (f *fakeTotals) CountedParticipantTotals(context.Context) (map[uint]int, error) {
	return f.totals, nil
}

type fakeNotifier struct {
	messages []notifier.Message
}

func (f *fakeNotifier) Notify(_ context.Context, msg notifier.Message) error {
	f.messages = append(f.messages, msg)
	return nil
}

func TestInventoryServiceRunCheck(t *testing.T) {
	t.Run("fixes drifted counters and notifies", func(t *testing.T) {
		repo := newFakeEventRepo(
			domain.ScheduleEvent{ID: 1, Date: "2025-06-14", Venue: "shibuya", StartTime: "10:00", Scenario: "星空のマリス", CurrentParticipants: 5},
			domain.ScheduleEvent{ID: 2, Date: "2025-06-14", Venue: "ikebukuro", StartTime: "19:00", Scenario: "グノーシア", CurrentParticipants: 4},
		)
		totals := &fakeTotals{totals: map[uint]int{1: 3, 2: 4}}
		notif := &fakeNotifier{}
		svc := NewInventoryService(repo, totals, notif)

		report, err := svc.RunCheck(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, report.TotalChecked)
		assert.Equal(t, 1, report.InconsistenciesFound)
		assert.Equal(t, 1, report.AutoFixed)
		require.Len(t, report.Details, 1)
		assert.Equal(t, "星空のマリス", report.Details[0].ScenarioTitle)
		assert.Equal(t, 5, report.Details[0].StoredCount)
		assert.Equal(t, 3, report.Details[0].ActualCount)
		assert.Equal(t, -2, report.Details[0].Difference)

		// Counter corrected to the reservation-derived truth.
		assert.Equal(t, 3, repo.events[1].CurrentParticipants)
		assert.Equal(t, 4, repo.events[2].CurrentParticipants)

		require.Len(t, notif.messages, 1)
		assert.Equal(t, 0xf59e0b, notif.messages[0].Color)
	})

	t.Run("event without reservations is treated as zero", func(t *testing.T) {
		repo := newFakeEventRepo(
			domain.ScheduleEvent{ID: 1, Date: "2025-06-14", StartTime: "10:00", Scenario: "a", CurrentParticipants: 2},
		)
		svc := NewInventoryService(repo, &fakeTotals{totals: map[uint]int{}}, &fakeNotifier{})

		report, err := svc.RunCheck(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.InconsistenciesFound)
		assert.Equal(t, 0, repo.events[1].CurrentParticipants)
	})

	t.Run("clean run does not notify", func(t *testing.T) {
		repo := newFakeEventRepo(
			domain.ScheduleEvent{ID: 1, Date: "2025-06-14", StartTime: "10:00", Scenario: "a", CurrentParticipants: 3},
		)
		notif := &fakeNotifier{}
		svc := NewInventoryService(repo, &fakeTotals{totals: map[uint]int{1: 3}}, notif)

		report, err := svc.RunCheck(context.Background())
		require.NoError(t, err)
		assert.Zero(t, report.InconsistenciesFound)
		assert.Zero(t, report.AutoFixed)
		assert.Empty(t, notif.messages)
	})

	t.Run("cancelled events are skipped", func(t *testing.T) {
		repo := newFakeEventRepo(
			domain.ScheduleEvent{ID: 1, Date: "2025-06-14", StartTime: "10:00", Scenario: "a", CurrentParticipants: 9, IsCancelled: true},
		)
		notif := &fakeNotifier{}
		svc := NewInventoryService(repo, &fakeTotals{totals: map[uint]int{}}, notif)

		report, err := svc.RunCheck(context.Background())
		require.NoError(t, err)
		assert.Zero(t, report.TotalChecked)
		assert.Equal(t, 9, repo.events[1].CurrentParticipants)
	})
}

func TestBuildCheckMessageCapsDetails(t *testing.T) {
	report := domain.ConsistencyReport{
		TotalChecked:         10,
		InconsistenciesFound: 8,
		AutoFixed:            8,
	}
	for i := 0; i < 8; i++ {
		report.Details = append(report.Details, domain.InconsistencyDetail{
			ScenarioTitle: "scenario", StoreName: "shibuya",
			Date: "2025-06-14", StartTime: "10:00",
			StoredCount: 5, ActualCount: 3, Difference: -2,
		})
	}

	msg := buildCheckMessage(report)

	require.Len(t, msg.Fields, 5)
	detail := msg.Fields[4]
	assert.Equal(t, "📝 不整合の詳細", detail.Name)
	assert.Contains(t, detail.Value, "... 他 3 件の不整合")
}
