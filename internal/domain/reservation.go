package domain

import "time"

type ReservationStatus string

const (
	ReservationPending     ReservationStatus = "pending"
	ReservationConfirmed   ReservationStatus = "confirmed"
	ReservationGMConfirmed ReservationStatus = "gm_confirmed"
	ReservationCompleted   ReservationStatus = "completed"
	ReservationCancelled   ReservationStatus = "cancelled"
	ReservationNoShow      ReservationStatus = "no_show"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationGMConfirmed,
		ReservationCompleted, ReservationCancelled, ReservationNoShow:
		return true
	}

	return false
}

// CountsTowardCapacity reports whether a reservation in this status is part
// of an event's true participant total. Only confirmed and pending
// reservations count; everything else has either left or never held a seat.
func (s ReservationStatus) CountsTowardCapacity() bool {
	return s == ReservationPending || s == ReservationConfirmed
}

// Reservation is a customer booking against a schedule event, or a floating
// private-booking request while no event exists yet. ScheduleEventID is
// nullable because unlinked historical rows exist and are repaired through
// the link endpoint.
type Reservation struct {
	ID                uint              `json:"id"`
	ReservationNumber string            `json:"reservation_number"`
	Title             string            `json:"title"`
	CustomerName      string            `json:"customer_name"`
	ScheduleEventID   *uint             `json:"schedule_event_id"`
	RequestedDatetime time.Time         `json:"requested_datetime"`
	ParticipantCount  int               `json:"participant_count"`
	Status            ReservationStatus `json:"status"`
	Notes             string            `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
