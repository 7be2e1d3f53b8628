package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrStaffNotFound = errors.New("staff not found")

type Staff struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	DisplayName string
	Email       string

	Roles            []string `gorm:"serializer:json"`
	Stores           []string `gorm:"serializer:json"`
	NGDays           []string `gorm:"serializer:json;column:ng_days"`
	Availability     []string `gorm:"serializer:json"`
	SpecialScenarios []string `gorm:"serializer:json"`

	Status string `gorm:"not null;default:active"`
	Notes  string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StaffDAO struct {
	db *gorm.DB
}

func NewStaffDAO(db *gorm.DB) *StaffDAO {
	return &StaffDAO{
		db: db,
	}
}

func (d *StaffDAO) Insert(ctx context.Context, staff Staff) (Staff, error) {
	result := d.db.WithContext(ctx).Create(&staff)
	if result.Error != nil {
		return Staff{}, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) FindByID(ctx context.Context, id uint) (Staff, error) {
	var staff Staff

	result := d.db.WithContext(ctx).First(&staff, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Staff{}, ErrStaffNotFound
		}

		return Staff{}, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) FindAll(ctx context.Context) ([]Staff, error) {
	var staff []Staff

	result := d.db.WithContext(ctx).Order("name").Find(&staff)
	if result.Error != nil {
		return nil, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) Update(ctx context.Context, staff Staff) (Staff, error) {
	result := d.db.WithContext(ctx).Save(&staff)
	if result.Error != nil {
		return Staff{}, result.Error
	}

	return staff, nil
}
