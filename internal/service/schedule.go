package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/repository"
)

var (
	ErrScheduleEventNotFound = repository.ErrScheduleEventNotFound
	ErrInvalidMonth          = errors.New("month must be formatted as YYYY-MM")
	ErrInvalidBand           = errors.New("band must be morning, afternoon or evening")
	ErrOverCapacity          = errors.New("current participants exceed max participants")
)

// SlotConflictError reports that the target slot already holds a
// non-cancelled event. Callers surface it as a warning; resubmitting with
// confirmOverwrite deletes the occupant.
type SlotConflictError struct {
	Existing domain.ScheduleEvent
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %v %v %v is occupied by %q (GM: %v, %v-%v)",
		e.Existing.Date, e.Existing.Venue, e.Existing.Band(),
		e.Existing.Scenario, strings.Join(e.Existing.GMs, ", "),
		e.Existing.StartTime, e.Existing.EndTime,
	)
}

type ScheduleEventRepository interface {
	Create(ctx context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error)
	FindByID(ctx context.Context, id uint) (domain.ScheduleEvent, error)
	FindByDateRange(ctx context.Context, from, to string) ([]domain.ScheduleEvent, error)
	FindByDate(ctx context.Context, date string) ([]domain.ScheduleEvent, error)
	FindNonCancelled(ctx context.Context) ([]domain.ScheduleEvent, error)
	FindUnlinkedToScenario(ctx context.Context) ([]domain.ScheduleEvent, error)
	Update(ctx context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error)
	SetCancelled(ctx context.Context, id uint, cancelled bool) error
	SetScenarioID(ctx context.Context, id uint, scenarioID uint) error
	SetCurrentParticipants(ctx context.Context, id uint, count int) error
	Delete(ctx context.Context, id uint) error
}

type ScheduleService struct {
	repo ScheduleEventRepository
}

func NewScheduleService(repo ScheduleEventRepository) *ScheduleService {
	return &ScheduleService{
		repo: repo,
	}
}

// ListMonth returns every event in the given YYYY-MM month.
func (s *ScheduleService) ListMonth(ctx context.Context, month string) ([]domain.ScheduleEvent, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, ErrInvalidMonth
	}

	// Dates are YYYY-MM-DD strings; "-32" is past any real day of the month.
	events, err := s.repo.FindByDateRange(ctx, month+"-01", month+"-32")
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDateRange -> %w", err)
	}

	return events, nil
}

// CountsForMonth tallies the month's events per category for the filter bar.
func (s *ScheduleService) CountsForMonth(ctx context.Context, month string) (map[string]int, error) {
	events, err := s.ListMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	return domain.CategoryCounts(events), nil
}

// EventsForSlot resolves the occupancy of one (date, venue, band) cell,
// including floating private requests that haven't been pinned to a venue.
func (s *ScheduleService) EventsForSlot(ctx context.Context, date, venue string, band domain.TimeBand) ([]domain.ScheduleEvent, error) {
	if !band.IsValid() {
		return nil, ErrInvalidBand
	}

	events, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDate -> %w", err)
	}

	return domain.EventsForSlot(events, date, venue, band), nil
}

// Create persists a new event. When the target slot already holds a
// non-cancelled event, it returns a SlotConflictError unless
// confirmOverwrite is set, in which case the occupant is deleted first and
// the new event takes the slot.
func (s *ScheduleService) Create(ctx context.Context, event domain.ScheduleEvent, confirmOverwrite bool) (domain.ScheduleEvent, error) {
	if event.CurrentParticipants > event.MaxParticipants {
		return domain.ScheduleEvent{}, ErrOverCapacity
	}

	// Floating private requests have no venue to collide with.
	if !event.IsFloating() {
		occupant, occupied, err := s.occupant(ctx, event.Date, event.Venue, event.Band(), 0)
		if err != nil {
			return domain.ScheduleEvent{}, err
		}
		if occupied {
			if !confirmOverwrite {
				return domain.ScheduleEvent{}, &SlotConflictError{Existing: occupant}
			}
			if err = s.repo.Delete(ctx, occupant.ID); err != nil {
				return domain.ScheduleEvent{}, fmt.Errorf("s.repo.Delete -> %w", err)
			}
		}
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.ScheduleEvent{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update saves changes to an existing event, applying the same conflict
// policy as Create when the event moved into an occupied slot.
func (s *ScheduleService) Update(ctx context.Context, event domain.ScheduleEvent, confirmOverwrite bool) (domain.ScheduleEvent, error) {
	if event.CurrentParticipants > event.MaxParticipants {
		return domain.ScheduleEvent{}, ErrOverCapacity
	}

	existing, err := s.repo.FindByID(ctx, event.ID)
	if err != nil {
		return domain.ScheduleEvent{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	event.CreatedAt = existing.CreatedAt

	if !event.IsFloating() {
		occupant, occupied, err := s.occupant(ctx, event.Date, event.Venue, event.Band(), event.ID)
		if err != nil {
			return domain.ScheduleEvent{}, err
		}
		if occupied {
			if !confirmOverwrite {
				return domain.ScheduleEvent{}, &SlotConflictError{Existing: occupant}
			}
			if err = s.repo.Delete(ctx, occupant.ID); err != nil {
				return domain.ScheduleEvent{}, fmt.Errorf("s.repo.Delete -> %w", err)
			}
		}
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.ScheduleEvent{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ScheduleService) occupant(ctx context.Context, date, venue string, band domain.TimeBand, excludeID uint) (domain.ScheduleEvent, bool, error) {
	events, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return domain.ScheduleEvent{}, false, fmt.Errorf("s.repo.FindByDate -> %w", err)
	}

	occupant, occupied := domain.Occupant(events, date, venue, band, excludeID)

	return occupant, occupied, nil
}

func (s *ScheduleService) Get(ctx context.Context, id uint) (domain.ScheduleEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ScheduleEvent{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

// Cancel soft-deletes the event; the row stays for history and reporting.
func (s *ScheduleService) Cancel(ctx context.Context, id uint) error {
	if err := s.repo.SetCancelled(ctx, id, true); err != nil {
		return fmt.Errorf("s.repo.SetCancelled -> %w", err)
	}

	return nil
}

func (s *ScheduleService) Uncancel(ctx context.Context, id uint) error {
	if err := s.repo.SetCancelled(ctx, id, false); err != nil {
		return fmt.Errorf("s.repo.SetCancelled -> %w", err)
	}

	return nil
}

// Delete removes the event row entirely. Used by admins; everyday flows go
// through Cancel.
func (s *ScheduleService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
