package domain

import "time"

type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
	StaffOnLeave  StaffStatus = "on-leave"
)

// Staff is a GM or admin identity. Availability and NGDays drive shift
// planning; SpecialScenarios lists the titles the member is qualified to GM.
type Staff struct {
	ID               uint        `json:"id"`
	Name             string      `json:"name"`
	DisplayName      string      `json:"display_name,omitempty"`
	Email            string      `json:"email,omitempty"`
	Roles            []string    `json:"roles"`
	Stores           []string    `json:"stores"`
	NGDays           []string    `json:"ng_days"`
	Availability     []string    `json:"availability"`
	SpecialScenarios []string    `json:"special_scenarios"`
	Status           StaffStatus `json:"status"`
	Notes            string      `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
