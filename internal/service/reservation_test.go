package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/repository"
)

type fakeReservationRepo struct {
	reservations map[uint]domain.Reservation
	nextID       uint
}

func newFakeReservationRepo(reservations ...domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{reservations: map[uint]domain.Reservation{}}
	for _, r := range reservations {
		if r.ID > repo.nextID {
			repo.nextID = r.ID
		}
		repo.reservations[r.ID] = r
	}

	return repo
}

func (r *fakeReservationRepo) Create(_ context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	r.nextID++
	reservation.ID = r.nextID
	r.reservations[reservation.ID] = reservation

	return reservation, nil
}

func (r *fakeReservationRepo) FindByID(_ context.Context, id uint) (domain.Reservation, error) {
	reservation, ok := r.reservations[id]
	if !ok {
		return domain.Reservation{}, repository.ErrReservationNotFound
	}

	return reservation, nil
}

func (r *fakeReservationRepo) FindByScheduleEventID(_ context.Context, eventID uint) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for id := uint(1); id <= r.nextID; id++ {
		res, ok := r.reservations[id]
		if ok && res.ScheduleEventID != nil && *res.ScheduleEventID == eventID {
			out = append(out, res)
		}
	}

	return out, nil
}

func (r *fakeReservationRepo) Update(_ context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	if _, ok := r.reservations[reservation.ID]; !ok {
		return domain.Reservation{}, repository.ErrReservationNotFound
	}
	r.reservations[reservation.ID] = reservation

	return reservation, nil
}

func (r *fakeReservationRepo) CountedParticipantTotals(_ context.Context) (map[uint]int, error) {
	totals := map[uint]int{}
	for _, res := range r.reservations {
		if res.ScheduleEventID != nil && res.Status.CountsTowardCapacity() {
			totals[*res.ScheduleEventID] += res.ParticipantCount
		}
	}

	return totals, nil
}

func TestReservationServiceCreate(t *testing.T) {
	eventRepo := newFakeEventRepo(
		domain.ScheduleEvent{ID: 1, Date: "2025-06-14", StartTime: "10:00"},
	)

	t.Run("assigns a reservation number and defaults to pending", func(t *testing.T) {
		repo := newFakeReservationRepo()
		svc := NewReservationService(repo, eventRepo)

		eventID := uint(1)
		created, err := svc.Create(context.Background(), domain.Reservation{
			Title:            "テスト予約",
			ScheduleEventID:  &eventID,
			ParticipantCount: 3,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ReservationNumber)
		assert.Equal(t, domain.ReservationPending, created.Status)
	})

	t.Run("unlinked reservation is allowed", func(t *testing.T) {
		repo := newFakeReservationRepo()
		svc := NewReservationService(repo, eventRepo)

		created, err := svc.Create(context.Background(), domain.Reservation{
			Title:            "貸切打診",
			ParticipantCount: 5,
		})
		require.NoError(t, err)
		assert.Nil(t, created.ScheduleEventID)
	})

	t.Run("rejects a missing event", func(t *testing.T) {
		repo := newFakeReservationRepo()
		svc := NewReservationService(repo, eventRepo)

		eventID := uint(99)
		_, err := svc.Create(context.Background(), domain.Reservation{
			Title:            "x",
			ScheduleEventID:  &eventID,
			ParticipantCount: 2,
		})
		assert.ErrorIs(t, err, ErrReservationEventMissing)
	})

	t.Run("rejects a non-positive participant count", func(t *testing.T) {
		svc := NewReservationService(newFakeReservationRepo(), eventRepo)

		_, err := svc.Create(context.Background(), domain.Reservation{Title: "x"})
		assert.ErrorIs(t, err, ErrInvalidParticipantCount)
	})
}

func TestReservationServiceLinkToEvent(t *testing.T) {
	eventRepo := newFakeEventRepo(
		domain.ScheduleEvent{ID: 1, Date: "2025-06-14", StartTime: "10:00"},
	)
	linked := uint(1)

	t.Run("links an unlinked reservation", func(t *testing.T) {
		repo := newFakeReservationRepo(domain.Reservation{ID: 1, Title: "x", ParticipantCount: 2})
		svc := NewReservationService(repo, eventRepo)

		updated, err := svc.LinkToEvent(context.Background(), 1, 1)
		require.NoError(t, err)
		require.NotNil(t, updated.ScheduleEventID)
		assert.Equal(t, uint(1), *updated.ScheduleEventID)
	})

	t.Run("refuses to relink", func(t *testing.T) {
		repo := newFakeReservationRepo(domain.Reservation{ID: 1, Title: "x", ScheduleEventID: &linked})
		svc := NewReservationService(repo, eventRepo)

		_, err := svc.LinkToEvent(context.Background(), 1, 1)
		assert.ErrorIs(t, err, ErrReservationAlreadyLinked)
	})
}

func TestReservationServiceUpdateStatus(t *testing.T) {
	repo := newFakeReservationRepo(domain.Reservation{ID: 1, Title: "x", Status: domain.ReservationPending})
	svc := NewReservationService(repo, newFakeEventRepo())

	updated, err := svc.UpdateStatus(context.Background(), 1, domain.ReservationConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), 1, "bogus")
	assert.ErrorIs(t, err, ErrInvalidReservationStatus)
}

func TestCountedParticipantTotals(t *testing.T) {
	eventID := uint(1)
	other := uint(2)
	repo := newFakeReservationRepo(
		domain.Reservation{ID: 1, ScheduleEventID: &eventID, ParticipantCount: 2, Status: domain.ReservationPending},
		domain.Reservation{ID: 2, ScheduleEventID: &eventID, ParticipantCount: 3, Status: domain.ReservationConfirmed},
		// Cancelled and no-show bookings release their seats.
		domain.Reservation{ID: 3, ScheduleEventID: &eventID, ParticipantCount: 4, Status: domain.ReservationCancelled},
		domain.Reservation{ID: 4, ScheduleEventID: &other, ParticipantCount: 6, Status: domain.ReservationNoShow},
	)

	totals, err := repo.CountedParticipantTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, totals[eventID])
	assert.Zero(t, totals[other])
}
