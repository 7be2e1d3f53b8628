package domain

import "time"

type ScenarioStatus string

const (
	ScenarioAvailable   ScenarioStatus = "available"
	ScenarioMaintenance ScenarioStatus = "maintenance"
	ScenarioRetired     ScenarioStatus = "retired"
)

// Scenario is a playable title with its capacity bounds and cost metadata.
type Scenario struct {
	ID                  uint           `json:"id"`
	Title               string         `json:"title"`
	Author              string         `json:"author"`
	Duration            int            `json:"duration"` // minutes
	PlayerCountMin      int            `json:"player_count_min"`
	PlayerCountMax      int            `json:"player_count_max"`
	AvailableGMs        []string       `json:"available_gms"`
	LicenseAmount       int            `json:"license_amount"`
	GMTestLicenseAmount int            `json:"gm_test_license_amount"`
	ProductionCost      int            `json:"production_cost"`
	Status              ScenarioStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
