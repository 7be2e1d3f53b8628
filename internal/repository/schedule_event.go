package repository

import (
	"context"
	"fmt"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/repository/dao"
)

var ErrScheduleEventNotFound = dao.ErrScheduleEventNotFound

type ScheduleEventDAO interface {
	Insert(ctx context.Context, event dao.ScheduleEvent) (dao.ScheduleEvent, error)
	FindByID(ctx context.Context, id uint) (dao.ScheduleEvent, error)
	FindByDateRange(ctx context.Context, from, to string) ([]dao.ScheduleEvent, error)
	FindByDate(ctx context.Context, date string) ([]dao.ScheduleEvent, error)
	FindNonCancelled(ctx context.Context) ([]dao.ScheduleEvent, error)
	FindUnlinkedToScenario(ctx context.Context) ([]dao.ScheduleEvent, error)
	Update(ctx context.Context, event dao.ScheduleEvent) (dao.ScheduleEvent, error)
	SetCancelled(ctx context.Context, id uint, cancelled bool) error
	SetScenarioID(ctx context.Context, id uint, scenarioID uint) error
	SetCurrentParticipants(ctx context.Context, id uint, count int) error
	Delete(ctx context.Context, id uint) error
}

type ScheduleEventRepository struct {
	dao ScheduleEventDAO
}

func NewScheduleEventRepository(dao ScheduleEventDAO) *ScheduleEventRepository {
	return &ScheduleEventRepository{
		dao: dao,
	}
}

func (r *ScheduleEventRepository) Create(ctx context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(event))
	if err != nil {
		return domain.ScheduleEvent{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ScheduleEventRepository) FindByID(ctx context.Context, id uint) (domain.ScheduleEvent, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.ScheduleEvent{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ScheduleEventRepository) FindByDateRange(ctx context.Context, from, to string) ([]domain.ScheduleEvent, error) {
	found, err := r.dao.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDateRange -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *ScheduleEventRepository) FindByDate(ctx context.Context, date string) ([]domain.ScheduleEvent, error) {
	found, err := r.dao.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDate -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *ScheduleEventRepository) FindNonCancelled(ctx context.Context) ([]domain.ScheduleEvent, error) {
	found, err := r.dao.FindNonCancelled(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindNonCancelled -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *ScheduleEventRepository) FindUnlinkedToScenario(ctx context.Context) ([]domain.ScheduleEvent, error) {
	found, err := r.dao.FindUnlinkedToScenario(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindUnlinkedToScenario -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *ScheduleEventRepository) Update(ctx context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
	toUpdate := r.domainToDAO(event)
	toUpdate.CreatedAt = event.CreatedAt

	updated, err := r.dao.Update(ctx, toUpdate)
	if err != nil {
		return domain.ScheduleEvent{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ScheduleEventRepository) SetCancelled(ctx context.Context, id uint, cancelled bool) error {
	if err := r.dao.SetCancelled(ctx, id, cancelled); err != nil {
		return fmt.Errorf("r.dao.SetCancelled -> %w", err)
	}

	return nil
}

func (r *ScheduleEventRepository) SetScenarioID(ctx context.Context, id uint, scenarioID uint) error {
	if err := r.dao.SetScenarioID(ctx, id, scenarioID); err != nil {
		return fmt.Errorf("r.dao.SetScenarioID -> %w", err)
	}

	return nil
}

func (r *ScheduleEventRepository) SetCurrentParticipants(ctx context.Context, id uint, count int) error {
	if err := r.dao.SetCurrentParticipants(ctx, id, count); err != nil {
		return fmt.Errorf("r.dao.SetCurrentParticipants -> %w", err)
	}

	return nil
}

func (r *ScheduleEventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ScheduleEventRepository) domainToDAO(e domain.ScheduleEvent) dao.ScheduleEvent {
	return dao.ScheduleEvent{
		ID:                  e.ID,
		Date:                e.Date,
		Venue:               e.Venue,
		Scenario:            e.Scenario,
		ScenarioID:          e.ScenarioID,
		StartTime:           e.StartTime,
		EndTime:             e.EndTime,
		Category:            string(e.Category),
		GMs:                 e.GMs,
		CurrentParticipants: e.CurrentParticipants,
		MaxParticipants:     e.MaxParticipants,
		IsCancelled:         e.IsCancelled,
		IsTentative:         e.IsTentative,
		IsPrivateRequest:    e.IsPrivateRequest,
		Notes:               e.Notes,
	}
}

func (r *ScheduleEventRepository) daoToDomain(e dao.ScheduleEvent) domain.ScheduleEvent {
	return domain.ScheduleEvent{
		ID:                  e.ID,
		Date:                e.Date,
		Venue:               e.Venue,
		Scenario:            e.Scenario,
		ScenarioID:          e.ScenarioID,
		StartTime:           e.StartTime,
		EndTime:             e.EndTime,
		Category:            domain.Category(e.Category),
		GMs:                 e.GMs,
		CurrentParticipants: e.CurrentParticipants,
		MaxParticipants:     e.MaxParticipants,
		IsCancelled:         e.IsCancelled,
		IsTentative:         e.IsTentative,
		IsPrivateRequest:    e.IsPrivateRequest,
		Notes:               e.Notes,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func (r *ScheduleEventRepository) daoToDomainSlice(events []dao.ScheduleEvent) []domain.ScheduleEvent {
	out := make([]domain.ScheduleEvent, 0, len(events))
	for _, e := range events {
		out = append(out, r.daoToDomain(e))
	}

	return out
}
