package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrScheduleEventNotFound = errors.New("schedule event not found")

type ScheduleEvent struct {
	ID uint `gorm:"primaryKey"`

	Date       string `gorm:"not null;index:idx_schedule_events_date"`
	Venue      string `gorm:"index:idx_schedule_events_venue"`
	Scenario   string
	ScenarioID *uint `gorm:"index"`

	StartTime string `gorm:"not null"`
	EndTime   string `gorm:"not null"`
	Category  string `gorm:"not null"`

	GMs []string `gorm:"serializer:json;column:gms"`

	CurrentParticipants int `gorm:"not null;default:0"`
	MaxParticipants     int `gorm:"not null;default:0"`

	IsCancelled      bool `gorm:"not null;default:false"`
	IsTentative      bool `gorm:"not null;default:false"`
	IsPrivateRequest bool `gorm:"not null;default:false"`

	Notes string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ScheduleEventDAO struct {
	db *gorm.DB
}

func NewScheduleEventDAO(db *gorm.DB) *ScheduleEventDAO {
	return &ScheduleEventDAO{
		db: db,
	}
}

func (d *ScheduleEventDAO) Insert(ctx context.Context, event ScheduleEvent) (ScheduleEvent, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return ScheduleEvent{}, result.Error
	}

	return event, nil
}

func (d *ScheduleEventDAO) FindByID(ctx context.Context, id uint) (ScheduleEvent, error) {
	var event ScheduleEvent

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ScheduleEvent{}, ErrScheduleEventNotFound
		}

		return ScheduleEvent{}, result.Error
	}

	return event, nil
}

// FindByDateRange returns all events with from <= date <= to. Dates are
// YYYY-MM-DD strings, so lexical comparison matches calendar order.
func (d *ScheduleEventDAO) FindByDateRange(ctx context.Context, from, to string) ([]ScheduleEvent, error) {
	var events []ScheduleEvent

	result := d.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date, start_time").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *ScheduleEventDAO) FindByDate(ctx context.Context, date string) ([]ScheduleEvent, error) {
	var events []ScheduleEvent

	result := d.db.WithContext(ctx).Where("date = ?", date).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *ScheduleEventDAO) FindNonCancelled(ctx context.Context) ([]ScheduleEvent, error) {
	var events []ScheduleEvent

	result := d.db.WithContext(ctx).Where("is_cancelled = ?", false).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// FindUnlinkedToScenario returns non-cancelled events without a scenario_id,
// the input set for scenario-name reconciliation.
func (d *ScheduleEventDAO) FindUnlinkedToScenario(ctx context.Context) ([]ScheduleEvent, error) {
	var events []ScheduleEvent

	result := d.db.WithContext(ctx).
		Where("is_cancelled = ? AND scenario_id IS NULL", false).
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *ScheduleEventDAO) Update(ctx context.Context, event ScheduleEvent) (ScheduleEvent, error) {
	result := d.db.WithContext(ctx).Save(&event)
	if result.Error != nil {
		return ScheduleEvent{}, result.Error
	}

	return event, nil
}

func (d *ScheduleEventDAO) SetCancelled(ctx context.Context, id uint, cancelled bool) error {
	result := d.db.WithContext(ctx).
		Model(&ScheduleEvent{}).
		Where("id = ?", id).
		Update("is_cancelled", cancelled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleEventNotFound
	}

	return nil
}

func (d *ScheduleEventDAO) SetScenarioID(ctx context.Context, id uint, scenarioID uint) error {
	result := d.db.WithContext(ctx).
		Model(&ScheduleEvent{}).
		Where("id = ?", id).
		Update("scenario_id", scenarioID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleEventNotFound
	}

	return nil
}

// SetCurrentParticipants corrects the denormalized counter on a single row.
func (d *ScheduleEventDAO) SetCurrentParticipants(ctx context.Context, id uint, count int) error {
	result := d.db.WithContext(ctx).
		Model(&ScheduleEvent{}).
		Where("id = ?", id).
		Update("current_participants", count)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleEventNotFound
	}

	return nil
}

// Delete removes the row for good. Normal flows cancel instead; this backs
// the confirmed slot-overwrite path and admin cleanup.
func (d *ScheduleEventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&ScheduleEvent{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleEventNotFound
	}

	return nil
}
