package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrScenarioNotFound = errors.New("scenario not found")

type Scenario struct {
	ID uint `gorm:"primaryKey"`

	Title  string `gorm:"not null;index"`
	Author string

	Duration       int
	PlayerCountMin int `gorm:"not null;default:0"`
	PlayerCountMax int `gorm:"not null;default:0"`

	AvailableGMs []string `gorm:"serializer:json;column:available_gms"`

	LicenseAmount       int
	GMTestLicenseAmount int
	ProductionCost      int

	Status string `gorm:"not null;default:available"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ScenarioDAO struct {
	db *gorm.DB
}

func NewScenarioDAO(db *gorm.DB) *ScenarioDAO {
	return &ScenarioDAO{
		db: db,
	}
}

func (d *ScenarioDAO) Insert(ctx context.Context, scenario Scenario) (Scenario, error) {
	result := d.db.WithContext(ctx).Create(&scenario)
	if result.Error != nil {
		return Scenario{}, result.Error
	}

	return scenario, nil
}

func (d *ScenarioDAO) FindByID(ctx context.Context, id uint) (Scenario, error) {
	var scenario Scenario

	result := d.db.WithContext(ctx).First(&scenario, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Scenario{}, ErrScenarioNotFound
		}

		return Scenario{}, result.Error
	}

	return scenario, nil
}

func (d *ScenarioDAO) FindAll(ctx context.Context) ([]Scenario, error) {
	var scenarios []Scenario

	result := d.db.WithContext(ctx).Order("title").Find(&scenarios)
	if result.Error != nil {
		return nil, result.Error
	}

	return scenarios, nil
}

func (d *ScenarioDAO) Update(ctx context.Context, scenario Scenario) (Scenario, error) {
	result := d.db.WithContext(ctx).Save(&scenario)
	if result.Error != nil {
		return Scenario{}, result.Error
	}

	return scenario, nil
}
