package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/repository"
)

var (
	ErrReservationNotFound         = repository.ErrReservationNotFound
	ErrInvalidReservationStatus    = errors.New("invalid reservation status")
	ErrReservationAlreadyLinked    = errors.New("reservation is already linked to a schedule event")
	ErrInvalidParticipantCount     = errors.New("participant count must be positive")
	ErrReservationEventMissing     = errors.New("schedule event for reservation not found")
	errReservationNumberUnassigned = errors.New("reservation number must not be set on create")
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
	FindByID(ctx context.Context, id uint) (domain.Reservation, error)
	FindByScheduleEventID(ctx context.Context, eventID uint) ([]domain.Reservation, error)
	Update(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
	CountedParticipantTotals(ctx context.Context) (map[uint]int, error)
}

type ReservationService struct {
	repo      ReservationRepository
	eventRepo ScheduleEventRepository
}

func NewReservationService(repo ReservationRepository, eventRepo ScheduleEventRepository) *ReservationService {
	return &ReservationService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

// Create stores a new reservation. Linked events must exist; floating
// private requests are created with a nil ScheduleEventID and linked later.
func (s *ReservationService) Create(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	if reservation.ParticipantCount <= 0 {
		return domain.Reservation{}, ErrInvalidParticipantCount
	}
	if reservation.ReservationNumber != "" {
		return domain.Reservation{}, errReservationNumberUnassigned
	}
	if !reservation.Status.IsValid() {
		reservation.Status = domain.ReservationPending
	}

	if reservation.ScheduleEventID != nil {
		if _, err := s.eventRepo.FindByID(ctx, *reservation.ScheduleEventID); err != nil {
			if errors.Is(err, ErrScheduleEventNotFound) {
				return domain.Reservation{}, ErrReservationEventMissing
			}

			return domain.Reservation{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
		}
	}

	reservation.ReservationNumber = uuid.NewString()

	created, err := s.repo.Create(ctx, reservation)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ReservationService) ListByEvent(ctx context.Context, eventID uint) ([]domain.Reservation, error) {
	reservations, err := s.repo.FindByScheduleEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByScheduleEventID -> %w", err)
	}

	return reservations, nil
}

// UpdateStatus transitions a reservation to a new lifecycle status.
func (s *ReservationService) UpdateStatus(ctx context.Context, id uint, status domain.ReservationStatus) (domain.Reservation, error) {
	if !status.IsValid() {
		return domain.Reservation{}, ErrInvalidReservationStatus
	}

	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	reservation.Status = status

	updated, err := s.repo.Update(ctx, reservation)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// LinkToEvent attaches an unlinked historical reservation to a schedule
// event. Already-linked reservations are left alone.
func (s *ReservationService) LinkToEvent(ctx context.Context, id, eventID uint) (domain.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if reservation.ScheduleEventID != nil {
		return domain.Reservation{}, ErrReservationAlreadyLinked
	}

	if _, err = s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, ErrScheduleEventNotFound) {
			return domain.Reservation{}, ErrReservationEventMissing
		}

		return domain.Reservation{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	reservation.ScheduleEventID = &eventID

	updated, err := s.repo.Update(ctx, reservation)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
