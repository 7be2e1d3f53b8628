package repository

import (
	"context"
	"fmt"

	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/repository/dao"
)

var ErrScenarioNotFound = dao.ErrScenarioNotFound

type ScenarioDAO interface {
	Insert(ctx context.Context, scenario dao.Scenario) (dao.Scenario, error)
	FindByID(ctx context.Context, id uint) (dao.Scenario, error)
	FindAll(ctx context.Context) ([]dao.Scenario, error)
	Update(ctx context.Context, scenario dao.Scenario) (dao.Scenario, error)
}

type ScenarioRepository struct {
	dao ScenarioDAO
}

func NewScenarioRepository(dao ScenarioDAO) *ScenarioRepository {
	return &ScenarioRepository{
		dao: dao,
	}
}

func (r *ScenarioRepository) Create(ctx context.Context, scenario domain.Scenario) (domain.Scenario, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(scenario))
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ScenarioRepository) FindByID(ctx context.Context, id uint) (domain.Scenario, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ScenarioRepository) FindAll(ctx context.Context) ([]domain.Scenario, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	out := make([]domain.Scenario, 0, len(found))
	for _, s := range found {
		out = append(out, r.daoToDomain(s))
	}

	return out, nil
}

func (r *ScenarioRepository) Update(ctx context.Context, scenario domain.Scenario) (domain.Scenario, error) {
	toUpdate := r.domainToDAO(scenario)
	toUpdate.CreatedAt = scenario.CreatedAt

	updated, err := r.dao.Update(ctx, toUpdate)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ScenarioRepository) domainToDAO(s domain.Scenario) dao.Scenario {
	return dao.Scenario{
		ID:                  s.ID,
		Title:               s.Title,
		Author:              s.Author,
		Duration:            s.Duration,
		PlayerCountMin:      s.PlayerCountMin,
		PlayerCountMax:      s.PlayerCountMax,
		AvailableGMs:        s.AvailableGMs,
		LicenseAmount:       s.LicenseAmount,
		GMTestLicenseAmount: s.GMTestLicenseAmount,
		ProductionCost:      s.ProductionCost,
		Status:              string(s.Status),
	}
}

func (r *ScenarioRepository) daoToDomain(s dao.Scenario) domain.Scenario {
	return domain.Scenario{
		ID:                  s.ID,
		Title:               s.Title,
		Author:              s.Author,
		Duration:            s.Duration,
		PlayerCountMin:      s.PlayerCountMin,
		PlayerCountMax:      s.PlayerCountMax,
		AvailableGMs:        s.AvailableGMs,
		LicenseAmount:       s.LicenseAmount,
		GMTestLicenseAmount: s.GMTestLicenseAmount,
		ProductionCost:      s.ProductionCost,
		Status:              domain.ScenarioStatus(s.Status),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
