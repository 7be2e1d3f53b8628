package repository

import (
	"context"
	"fmt"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/repository/dao"
)

var ErrReservationNotFound = dao.ErrReservationNotFound

type ReservationDAO interface {
	Insert(ctx context.Context, reservation dao.Reservation) (dao.Reservation, error)
	FindByID(ctx context.Context, id uint) (dao.Reservation, error)
	FindByScheduleEventID(ctx context.Context, eventID uint) ([]dao.Reservation, error)
	Update(ctx context.Context, reservation dao.Reservation) (dao.Reservation, error)
	SumParticipantsByEvent(ctx context.Context, statuses []string) (map[uint]int, error)
}

type ReservationRepository struct {
	dao ReservationDAO
}

func NewReservationRepository(dao ReservationDAO) *ReservationRepository {
	return &ReservationRepository{
		dao: dao,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(reservation))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uint) (domain.Reservation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ReservationRepository) FindByScheduleEventID(ctx context.Context, eventID uint) ([]domain.Reservation, error) {
	found, err := r.dao.FindByScheduleEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByScheduleEventID -> %w", err)
	}

	out := make([]domain.Reservation, 0, len(found))
	for _, res := range found {
		out = append(out, r.daoToDomain(res))
	}

	return out, nil
}

func (r *ReservationRepository) Update(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	toUpdate := r.domainToDAO(reservation)
	toUpdate.CreatedAt = reservation.CreatedAt

	updated, err := r.dao.Update(ctx, toUpdate)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

// CountedParticipantTotals returns the reservation-derived participant total
// per event, counting only statuses that hold a seat.
func (r *ReservationRepository) CountedParticipantTotals(ctx context.Context) (map[uint]int, error) {
	totals, err := r.dao.SumParticipantsByEvent(ctx, []string{
		string(domain.ReservationPending),
		string(domain.ReservationConfirmed),
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.SumParticipantsByEvent -> %w", err)
	}

	return totals, nil
}

func (r *ReservationRepository) domainToDAO(res domain.Reservation) dao.Reservation {
	return dao.Reservation{
		ID:                res.ID,
		ReservationNumber: res.ReservationNumber,
		Title:             res.Title,
		CustomerName:      res.CustomerName,
		ScheduleEventID:   res.ScheduleEventID,
		RequestedDatetime: res.RequestedDatetime,
		ParticipantCount:  res.ParticipantCount,
		Status:            string(res.Status),
		Notes:             res.Notes,
	}
}

func (r *ReservationRepository) daoToDomain(res dao.Reservation) domain.Reservation {
	return domain.Reservation{
		ID:                res.ID,
		ReservationNumber: res.ReservationNumber,
		Title:             res.Title,
		CustomerName:      res.CustomerName,
		ScheduleEventID:   res.ScheduleEventID,
		RequestedDatetime: res.RequestedDatetime,
		ParticipantCount:  res.ParticipantCount,
		Status:            domain.ReservationStatus(res.Status),
		Notes:             res.Notes,
		CreatedAt:         res.CreatedAt,
		UpdatedAt:         res.UpdatedAt,
	}
}
