package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrReservationNotFound = errors.New("reservation not found")

type Reservation struct {
	ID uint `gorm:"primaryKey"`

	ReservationNumber string `gorm:"unique;not null"`
	Title             string
	CustomerName      string

	ScheduleEventID *uint `gorm:"index"`

	RequestedDatetime time.Time `gorm:"not null"`
	ParticipantCount  int       `gorm:"not null;default:0"`
	Status            string    `gorm:"not null"`
	Notes             string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ReservationDAO struct {
	db *gorm.DB
}

func NewReservationDAO(db *gorm.DB) *ReservationDAO {
	return &ReservationDAO{
		db: db,
	}
}

func (d *ReservationDAO) Insert(ctx context.Context, reservation Reservation) (Reservation, error) {
	result := d.db.WithContext(ctx).Create(&reservation)
	if result.Error != nil {
		return Reservation{}, result.Error
	}

	return reservation, nil
}

func (d *ReservationDAO) FindByID(ctx context.Context, id uint) (Reservation, error) {
	var reservation Reservation

	result := d.db.WithContext(ctx).First(&reservation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reservation{}, ErrReservationNotFound
		}

		return Reservation{}, result.Error
	}

	return reservation, nil
}

func (d *ReservationDAO) FindByScheduleEventID(ctx context.Context, eventID uint) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).
		Where("schedule_event_id = ?", eventID).
		Order("created_at").
		Find(&reservations)
	if result.Error != nil {
		return nil, result.Error
	}

	return reservations, nil
}

func (d *ReservationDAO) Update(ctx context.Context, reservation Reservation) (Reservation, error) {
	result := d.db.WithContext(ctx).Save(&reservation)
	if result.Error != nil {
		return Reservation{}, result.Error
	}

	return reservation, nil
}

type participantTotal struct {
	ScheduleEventID uint
	Total           int
}

// SumParticipantsByEvent returns, per linked event, the sum of
// participant_count across reservations in the given statuses. This is the
// authoritative count the consistency checker compares the cached counters
// against.
func (d *ReservationDAO) SumParticipantsByEvent(ctx context.Context, statuses []string) (map[uint]int, error) {
	var rows []participantTotal

	result := d.db.WithContext(ctx).
		Model(&Reservation{}).
		Select("schedule_event_id, SUM(participant_count) AS total").
		Where("schedule_event_id IS NOT NULL AND status IN ?", statuses).
		Group("schedule_event_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make(map[uint]int, len(rows))
	for _, row := range rows {
		totals[row.ScheduleEventID] = row.Total
	}

	return totals, nil
}
