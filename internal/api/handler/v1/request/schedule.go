package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mmqops/booking-api/internal/domain"
)

var (
	dateExp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeExp = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

type ScheduleEventRequest struct {
	Date                string   `json:"date"`
	Venue               string   `json:"venue"`
	Scenario            string   `json:"scenario"`
	ScenarioID          *uint    `json:"scenario_id"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	Category            string   `json:"category"`
	GMs                 []string `json:"gms"`
	CurrentParticipants int      `json:"current_participants"`
	MaxParticipants     int      `json:"max_participants"`
	IsTentative         bool     `json:"is_tentative"`
	IsPrivateRequest    bool     `json:"is_private_request"`
	Notes               string   `json:"notes"`

	// ConfirmOverwrite acknowledges the conflict warning: the occupant of
	// the target slot is deleted and this event takes its place.
	ConfirmOverwrite bool `json:"confirm_overwrite"`
}

func (req *ScheduleEventRequest) Validate() error {
	rules := []*validation.FieldRules{
		validation.Field(&req.Date, validation.Required, validation.Match(dateExp)),
		validation.Field(&req.StartTime, validation.Required, validation.Match(timeExp)),
		validation.Field(&req.EndTime, validation.Required, validation.Match(timeExp)),
		validation.Field(&req.Category, validation.Required, validation.By(validCategory)),
		validation.Field(&req.CurrentParticipants, validation.Min(0)),
		validation.Field(&req.MaxParticipants, validation.Min(0)),
	}

	// Only floating private requests may omit the venue.
	if !req.IsPrivateRequest {
		rules = append(rules, validation.Field(&req.Venue, validation.Required))
	}

	return validation.ValidateStruct(req, rules...)
}

func validCategory(value interface{}) error {
	s, _ := value.(string)
	if !domain.Category(s).IsValid() {
		return validation.NewError("validation_invalid_category", "must be a valid event category")
	}

	return nil
}

// ToDomain builds the domain event. The ID is supplied by the handler for
// updates.
func (req *ScheduleEventRequest) ToDomain() domain.ScheduleEvent {
	return domain.ScheduleEvent{
		Date:                req.Date,
		Venue:               req.Venue,
		Scenario:            req.Scenario,
		ScenarioID:          req.ScenarioID,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Category:            domain.Category(req.Category),
		GMs:                 req.GMs,
		CurrentParticipants: req.CurrentParticipants,
		MaxParticipants:     req.MaxParticipants,
		IsTentative:         req.IsTentative,
		IsPrivateRequest:    req.IsPrivateRequest,
		Notes:               req.Notes,
	}
}
