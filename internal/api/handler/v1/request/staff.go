package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/mmqops/booking-api/internal/domain"
)

type StaffRequest struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"display_name"`
	Email            string   `json:"email"`
	Roles            []string `json:"roles"`
	Stores           []string `json:"stores"`
	NGDays           []string `json:"ng_days"`
	Availability     []string `json:"availability"`
	SpecialScenarios []string `json:"special_scenarios"`
	Status           string   `json:"status"`
	Notes            string   `json:"notes"`
}

func (req *StaffRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Status, validation.In("", "active", "inactive", "on-leave")),
	)
}

func (req *StaffRequest) ToDomain() domain.Staff {
	return domain.Staff{
		Name:             req.Name,
		DisplayName:      req.DisplayName,
		Email:            req.Email,
		Roles:            req.Roles,
		Stores:           req.Stores,
		NGDays:           req.NGDays,
		Availability:     req.Availability,
		SpecialScenarios: req.SpecialScenarios,
		Status:           domain.StaffStatus(req.Status),
		Notes:            req.Notes,
	}
}
