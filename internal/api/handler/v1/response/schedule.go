package response

import "github.com/mmqops/booking-api/internal/domain"

// SlotConflict is the 409 body returned when a create or update targets an
// occupied slot. The client shows the warning dialog from these fields and
// resubmits with confirm_overwrite to go through with the overwrite.
type SlotConflict struct {
	Error    string              `json:"error"`
	Conflict SlotConflictDetails `json:"conflict"`
}

type SlotConflictDetails struct {
	EventID   uint            `json:"event_id"`
	Scenario  string          `json:"scenario"`
	GMs       []string        `json:"gms"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Date      string          `json:"date"`
	Venue     string          `json:"venue"`
	Band      domain.TimeBand `json:"band"`
}

func NewSlotConflict(existing domain.ScheduleEvent) SlotConflict {
	return SlotConflict{
		Error: "slot is already occupied",
		Conflict: SlotConflictDetails{
			EventID:   existing.ID,
			Scenario:  existing.Scenario,
			GMs:       existing.GMs,
			StartTime: existing.StartTime,
			EndTime:   existing.EndTime,
			Date:      existing.Date,
			Venue:     existing.Venue,
			Band:      existing.Band(),
		},
	}
}

// CheckResult wraps a consistency report for the HTTP boundary.
type CheckResult struct {
	Success bool `json:"success"`
	domain.ConsistencyReport
}
