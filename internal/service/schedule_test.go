package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/repository"
)

// fakeEventRepo is an in-memory ScheduleEventRepository for service tests.
type fakeEventRepo struct {
	events  map[uint]domain.ScheduleEvent
	nextID  uint
	deleted []uint
}

func newFakeEventRepo(events ...domain.ScheduleEvent) *fakeEventRepo {
	repo := &fakeEventRepo{events: map[uint]domain.ScheduleEvent{}}
	for _, e := range events {
		if e.ID > repo.nextID {
			repo.nextID = e.ID
		}
		repo.events[e.ID] = e
	}

	return repo
}

func (r *fakeEventRepo) all() []domain.ScheduleEvent {
	out := make([]domain.ScheduleEvent, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func (r *fakeEventRepo) Create(_ context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
	r.nextID++
	event.ID = r.nextID
	r.events[event.ID] = event

	return event, nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uint) (domain.ScheduleEvent, error) {
	event, ok := r.events[id]
	if !ok {
		return domain.ScheduleEvent{}, repository.ErrScheduleEventNotFound
	}

	return event, nil
}

func (r *fakeEventRepo) FindByDateRange(_ context.Context, from, to string) ([]domain.ScheduleEvent, error) {
	var out []domain.ScheduleEvent
	for _, e := range r.all() {
		if e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *fakeEventRepo) FindByDate(_ context.Context, date string) ([]domain.ScheduleEvent, error) {
	var out []domain.ScheduleEvent
	for _, e := range r.all() {
		if e.Date == date {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *fakeEventRepo) FindNonCancelled(_ context.Context) ([]domain.ScheduleEvent, error) {
	var out []domain.ScheduleEvent
	for _, e := range r.all() {
		if !e.IsCancelled {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *fakeEventRepo) FindUnlinkedToScenario(_ context.Context) ([]domain.ScheduleEvent, error) {
	var out []domain.ScheduleEvent
	for _, e := range r.all() {
		if !e.IsCancelled && e.Scenario != "" && e.ScenarioID == nil {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
	if _, ok := r.events[event.ID]; !ok {
		return domain.ScheduleEvent{}, repository.ErrScheduleEventNotFound
	}
	r.events[event.ID] = event

	return event, nil
}

func (r *fakeEventRepo) SetCancelled(_ context.Context, id uint, cancelled bool) error {
	event, ok := r.events[id]
	if !ok {
		return repository.ErrScheduleEventNotFound
	}
	event.IsCancelled = cancelled
	r.events[id] = event

	return nil
}

func (r *fakeEventRepo) SetScenarioID(_ context.Context, id, scenarioID uint) error {
	event, ok := r.events[id]
	if !ok {
		return repository.ErrScheduleEventNotFound
	}
	event.ScenarioID = &scenarioID
	r.events[id] = event

	return nil
}

func (r *fakeEventRepo) SetCurrentParticipants(_ context.Context, id uint, count int) error {
	event, ok := r.events[id]
	if !ok {
		return repository.ErrScheduleEventNotFound
	}
	event.CurrentParticipants = count
	r.events[id] = event

	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.events[id]; !ok {
		return repository.ErrScheduleEventNotFound
	}
	delete(r.events, id)
	r.deleted = append(r.deleted, id)

	return nil
}

func TestScheduleServiceListMonth(t *testing.T) {
	repo := newFakeEventRepo(
		domain.ScheduleEvent{ID: 1, Date: "2025-06-01", StartTime: "10:00"},
		domain.ScheduleEvent{ID: 2, Date: "2025-06-30", StartTime: "19:00"},
		domain.ScheduleEvent{ID: 3, Date: "2025-07-01", StartTime: "10:00"},
	)
	svc := NewScheduleService(repo)

	events, err := svc.ListMonth(context.Background(), "2025-06")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, uint(1), events[0].ID)
	assert.Equal(t, uint(2), events[1].ID)

	_, err = svc.ListMonth(context.Background(), "2025/06")
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = svc.ListMonth(context.Background(), "2025-13")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestScheduleServiceEventsForSlot(t *testing.T) {
	repo := newFakeEventRepo(
		domain.ScheduleEvent{ID: 1, Date: "2025-06-14", Venue: "shibuya", StartTime: "10:00"},
		domain.ScheduleEvent{ID: 2, Date: "2025-06-14", StartTime: "10:30", IsPrivateRequest: true},
	)
	svc := NewScheduleService(repo)

	events, err := svc.EventsForSlot(context.Background(), "2025-06-14", "shibuya", domain.BandMorning)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	_, err = svc.EventsForSlot(context.Background(), "2025-06-14", "shibuya", "midnight")
	assert.ErrorIs(t, err, ErrInvalidBand)
}

func TestScheduleServiceCreateConflict(t *testing.T) {
	occupant := domain.ScheduleEvent{
		ID: 1, Date: "2025-06-14", Venue: "shibuya", StartTime: "10:00",
		Scenario: "星空のマリス", GMs: []string{"tanaka"},
	}
	newEvent := domain.ScheduleEvent{
		Date: "2025-06-14", Venue: "shibuya", StartTime: "11:00",
		Scenario: "グノーシア", MaxParticipants: 6,
	}

	t.Run("occupied slot warns without mutating anything", func(t *testing.T) {
		repo := newFakeEventRepo(occupant)
		svc := NewScheduleService(repo)

		_, err := svc.Create(context.Background(), newEvent, false)

		var conflict *SlotConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, uint(1), conflict.Existing.ID)
		assert.Equal(t, "星空のマリス", conflict.Existing.Scenario)
		assert.Len(t, repo.events, 1)
		assert.Empty(t, repo.deleted)
	})

	t.Run("confirmed overwrite deletes the occupant", func(t *testing.T) {
		repo := newFakeEventRepo(occupant)
		svc := NewScheduleService(repo)

		created, err := svc.Create(context.Background(), newEvent, true)
		require.NoError(t, err)
		assert.Equal(t, "グノーシア", created.Scenario)
		assert.Equal(t, []uint{1}, repo.deleted)
		assert.Len(t, repo.events, 1)
	})

	t.Run("cancelled occupant does not block", func(t *testing.T) {
		cancelled := occupant
		cancelled.IsCancelled = true
		repo := newFakeEventRepo(cancelled)
		svc := NewScheduleService(repo)

		_, err := svc.Create(context.Background(), newEvent, false)
		require.NoError(t, err)
		assert.Len(t, repo.events, 2)
	})

	t.Run("floating private request skips the conflict check", func(t *testing.T) {
		repo := newFakeEventRepo(occupant)
		svc := NewScheduleService(repo)

		floating := domain.ScheduleEvent{
			Date: "2025-06-14", StartTime: "10:30",
			IsPrivateRequest: true, MaxParticipants: 6,
		}
		_, err := svc.Create(context.Background(), floating, false)
		require.NoError(t, err)
		assert.Len(t, repo.events, 2)
	})

	t.Run("over capacity is rejected", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewScheduleService(repo)

		bad := newEvent
		bad.CurrentParticipants = 7
		bad.MaxParticipants = 6
		_, err := svc.Create(context.Background(), bad, false)
		assert.ErrorIs(t, err, ErrOverCapacity)
	})
}

func TestScheduleServiceUpdateConflict(t *testing.T) {
	eventA := domain.ScheduleEvent{ID: 1, Date: "2025-06-14", Venue: "shibuya", StartTime: "10:00", Scenario: "a", MaxParticipants: 6}
	eventB := domain.ScheduleEvent{ID: 2, Date: "2025-06-14", Venue: "ikebukuro", StartTime: "10:00", Scenario: "b", MaxParticipants: 6}

	t.Run("updating in place does not conflict with itself", func(t *testing.T) {
		repo := newFakeEventRepo(eventA, eventB)
		svc := NewScheduleService(repo)

		changed := eventA
		changed.Scenario = "renamed"
		updated, err := svc.Update(context.Background(), changed, false)
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Scenario)
	})

	t.Run("moving into an occupied slot warns", func(t *testing.T) {
		repo := newFakeEventRepo(eventA, eventB)
		svc := NewScheduleService(repo)

		moved := eventB
		moved.Venue = "shibuya"
		_, err := svc.Update(context.Background(), moved, false)

		var conflict *SlotConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, uint(1), conflict.Existing.ID)
	})

	t.Run("confirmed move deletes the displaced occupant", func(t *testing.T) {
		repo := newFakeEventRepo(eventA, eventB)
		svc := NewScheduleService(repo)

		moved := eventB
		moved.Venue = "shibuya"
		updated, err := svc.Update(context.Background(), moved, true)
		require.NoError(t, err)
		assert.Equal(t, "shibuya", updated.Venue)
		assert.Equal(t, []uint{1}, repo.deleted)
	})
}

func TestScheduleServiceCancelUncancel(t *testing.T) {
	repo := newFakeEventRepo(domain.ScheduleEvent{ID: 1, Date: "2025-06-14", StartTime: "10:00"})
	svc := NewScheduleService(repo)

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.True(t, repo.events[1].IsCancelled)

	require.NoError(t, svc.Uncancel(context.Background(), 1))
	assert.False(t, repo.events[1].IsCancelled)

	err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrScheduleEventNotFound)
}
