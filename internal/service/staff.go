package service

import (
	"context"
	"fmt"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/repository"
)

var ErrStaffNotFound = repository.ErrStaffNotFound

type StaffRepository interface {
	Create(ctx context.Context, staff domain.Staff) (domain.Staff, error)
	FindByID(ctx context.Context, id uint) (domain.Staff, error)
	FindAll(ctx context.Context) ([]domain.Staff, error)
	Update(ctx context.Context, staff domain.Staff) (domain.Staff, error)
}

type StaffService struct {
	repo StaffRepository
}

func NewStaffService(repo StaffRepository) *StaffService {
	return &StaffService{
		repo: repo,
	}
}

func (s *StaffService) List(ctx context.Context) ([]domain.Staff, error) {
	staff, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return staff, nil
}

func (s *StaffService) Get(ctx context.Context, id uint) (domain.Staff, error) {
	staff, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return staff, nil
}

func (s *StaffService) Create(ctx context.Context, staff domain.Staff) (domain.Staff, error) {
	if staff.Status == "" {
		staff.Status = domain.StaffActive
	}

	created, err := s.repo.Create(ctx, staff)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *StaffService) Update(ctx context.Context, staff domain.Staff) (domain.Staff, error) {
	existing, err := s.repo.FindByID(ctx, staff.ID)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	staff.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, staff)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
