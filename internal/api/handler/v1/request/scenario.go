package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mmqops/booking-api/internal/domain"
)

type CreateScenarioRequest struct {
	Title               string   `json:"title"`
	Author              string   `json:"author"`
	Duration            int      `json:"duration"`
	PlayerCountMin      int      `json:"player_count_min"`
	PlayerCountMax      int      `json:"player_count_max"`
	AvailableGMs        []string `json:"available_gms"`
	LicenseAmount       int      `json:"license_amount"`
	GMTestLicenseAmount int      `json:"gm_test_license_amount"`
	ProductionCost      int      `json:"production_cost"`
	Status              string   `json:"status"`
}

func (req *CreateScenarioRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.PlayerCountMin, validation.Min(0)),
		validation.Field(&req.PlayerCountMax, validation.Min(0)),
		validation.Field(&req.Status, validation.In("", "available", "maintenance", "retired")),
	)
	if err != nil {
		return err
	}

	if req.PlayerCountMax < req.PlayerCountMin {
		return validation.NewError("validation_player_count", "player_count_max must not be below player_count_min")
	}

	return nil
}

func (req *CreateScenarioRequest) ToDomain() domain.Scenario {
	return domain.Scenario{
		Title:               req.Title,
		Author:              req.Author,
		Duration:            req.Duration,
		PlayerCountMin:      req.PlayerCountMin,
		PlayerCountMax:      req.PlayerCountMax,
		AvailableGMs:        req.AvailableGMs,
		LicenseAmount:       req.LicenseAmount,
		GMTestLicenseAmount: req.GMTestLicenseAmount,
		ProductionCost:      req.ProductionCost,
		Status:              domain.ScenarioStatus(req.Status),
	}
}
