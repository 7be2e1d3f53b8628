package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mmqops/booking-api/internal/domain"
)

type CreateReservationRequest struct {
	Title             string    `json:"title"`
	CustomerName      string    `json:"customer_name"`
	ScheduleEventID   *uint     `json:"schedule_event_id"`
	RequestedDatetime time.Time `json:"requested_datetime"`
	ParticipantCount  int       `json:"participant_count"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes"`
}

func (req *CreateReservationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.ParticipantCount, validation.Required, validation.Min(1)),
		validation.Field(&req.RequestedDatetime, validation.Required),
		validation.Field(&req.Status, validation.By(validReservationStatus)),
	)
}

func (req *CreateReservationRequest) ToDomain() domain.Reservation {
	return domain.Reservation{
		Title:             req.Title,
		CustomerName:      req.CustomerName,
		ScheduleEventID:   req.ScheduleEventID,
		RequestedDatetime: req.RequestedDatetime,
		ParticipantCount:  req.ParticipantCount,
		Status:            domain.ReservationStatus(req.Status),
		Notes:             req.Notes,
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateReservationStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.By(validReservationStatus)),
	)
}

type LinkReservationRequest struct {
	ScheduleEventID uint `json:"schedule_event_id"`
}

func (req *LinkReservationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ScheduleEventID, validation.Required, validation.Min(uint(1))),
	)
}

func validReservationStatus(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // defaults to pending
	}
	if !domain.ReservationStatus(s).IsValid() {
		return validation.NewError("validation_invalid_status", "must be a valid reservation status")
	}

	return nil
}
