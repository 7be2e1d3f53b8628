package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/repository"
)

type fakeScenarioRepo struct {
	scenarios map[uint]domain.Scenario
}

func (r *fakeScenarioRepo) Create(_ context.Context, scenario domain.Scenario) (domain.Scenario, error) {
	scenario.ID = uint(len(r.scenarios) + 1)
	r.scenarios[scenario.ID] = scenario

	return scenario, nil
}

func (r *fakeScenarioRepo) FindByID(_ context.Context, id uint) (domain.Scenario, error) {
	scenario, ok := r.scenarios[id]
	if !ok {
		return domain.Scenario{}, repository.ErrScenarioNotFound
	}

	return scenario, nil
}

func (r *fakeScenarioRepo) FindAll(_ context.Context) ([]domain.Scenario, error) {
	out := make([]domain.Scenario, 0, len(r.scenarios))
	for id := uint(1); id <= uint(len(r.scenarios)); id++ {
		out = append(out, r.scenarios[id])
	}

	return out, nil
}

func (r *fakeScenarioRepo) Update(_ context.Context, scenario domain.Scenario) (domain.Scenario, error) {
	r.scenarios[scenario.ID] = scenario

	return scenario, nil
}

func TestScenarioServiceReconcile(t *testing.T) {
	scenarioRepo := &fakeScenarioRepo{scenarios: map[uint]domain.Scenario{
		1: {ID: 1, Title: "星空のマリス"},
		2: {ID: 2, Title: "何度だって青い月に火を灯した"},
	}}

	linked := uint(1)
	newEvents := func() *fakeEventRepo {
		return newFakeEventRepo(
			domain.ScheduleEvent{ID: 1, Date: "2025-06-14", StartTime: "10:00", Scenario: "貸・星空のマリス"},
			domain.ScheduleEvent{ID: 2, Date: "2025-06-14", StartTime: "14:30", Scenario: "未登録シナリオ"},
			// Already linked: not scanned.
			domain.ScheduleEvent{ID: 3, Date: "2025-06-14", StartTime: "19:00", Scenario: "星空のマリス", ScenarioID: &linked},
		)
	}

	t.Run("links matched events", func(t *testing.T) {
		events := newEvents()
		svc := NewScenarioService(scenarioRepo, events)

		result, err := svc.Reconcile(context.Background(), false)
		require.NoError(t, err)

		assert.Equal(t, 2, result.EventsScanned)
		assert.Equal(t, 1, result.Matched)
		assert.Equal(t, 1, result.Updated)
		require.Len(t, result.Matches, 1)
		assert.Equal(t, uint(1), result.Matches[0].EventID)
		assert.Equal(t, "星空のマリス", result.Matches[0].MatchedTitle)
		assert.True(t, result.Matches[0].UpdateApplied)

		require.NotNil(t, events.events[1].ScenarioID)
		assert.Equal(t, uint(1), *events.events[1].ScenarioID)
		assert.Nil(t, events.events[2].ScenarioID)
	})

	t.Run("dry run reports without updating", func(t *testing.T) {
		events := newEvents()
		svc := NewScenarioService(scenarioRepo, events)

		result, err := svc.Reconcile(context.Background(), true)
		require.NoError(t, err)

		assert.True(t, result.DryRun)
		assert.Equal(t, 1, result.Matched)
		assert.Zero(t, result.Updated)
		require.Len(t, result.Matches, 1)
		assert.False(t, result.Matches[0].UpdateApplied)
		assert.Nil(t, events.events[1].ScenarioID)
	})
}
