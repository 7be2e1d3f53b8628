package repository

import (
	"context"
	"fmt"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/repository/dao"
)

var ErrStaffNotFound = dao.ErrStaffNotFound

type StaffDAO interface {
	Insert(ctx context.Context, staff dao.Staff) (dao.Staff, error)
	FindByID(ctx context.Context, id uint) (dao.Staff, error)
	FindAll(ctx context.Context) ([]dao.Staff, error)
	Update(ctx context.Context, staff dao.Staff) (dao.Staff, error)
}

type StaffRepository struct {
	dao StaffDAO
}

func NewStaffRepository(dao StaffDAO) *StaffRepository {
	return &StaffRepository{
		dao: dao,
	}
}

func (r *StaffRepository) Create(ctx context.Context, staff domain.Staff) (domain.Staff, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(staff))
	if err != nil {
		return domain.Staff{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id uint) (domain.Staff, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StaffRepository) FindAll(ctx context.Context) ([]domain.Staff, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	out := make([]domain.Staff, 0, len(found))
	for _, s := range found {
		out = append(out, r.daoToDomain(s))
	}

	return out, nil
}

func (r *StaffRepository) Update(ctx context.Context, staff domain.Staff) (domain.Staff, error) {
	toUpdate := r.domainToDAO(staff)
	toUpdate.CreatedAt = staff.CreatedAt

	updated, err := r.dao.Update(ctx, toUpdate)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StaffRepository) domainToDAO(s domain.Staff) dao.Staff {
	return dao.Staff{
		ID:               s.ID,
		Name:             s.Name,
		DisplayName:      s.DisplayName,
		Email:            s.Email,
		Roles:            s.Roles,
		Stores:           s.Stores,
		NGDays:           s.NGDays,
		Availability:     s.Availability,
		SpecialScenarios: s.SpecialScenarios,
		Status:           string(s.Status),
		Notes:            s.Notes,
	}
}

func (r *StaffRepository) daoToDomain(s dao.Staff) domain.Staff {
	return domain.Staff{
		ID:               s.ID,
		Name:             s.Name,
		DisplayName:      s.DisplayName,
		Email:            s.Email,
		Roles:            s.Roles,
		Stores:           s.Stores,
		NGDays:           s.NGDays,
		Availability:     s.Availability,
		SpecialScenarios: s.SpecialScenarios,
		Status:           domain.StaffStatus(s.Status),
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
