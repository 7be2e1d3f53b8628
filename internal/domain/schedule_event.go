package domain

import (
	"strings"
	"time"
)

// Category tags what kind of performance an event is.
type Category string

const (
	CategoryOpen            Category = "open"
	CategoryPrivate         Category = "private"
	CategoryGMTest          Category = "gmtest"
	CategoryTestplay        Category = "testplay"
	CategoryOffsite         Category = "offsite"
	CategoryVenueRental     Category = "venue_rental"
	CategoryVenueRentalFree Category = "venue_rental_free"
	CategoryPackage         Category = "package"
	CategoryMTG             Category = "mtg"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryOpen,
	CategoryPrivate,
	CategoryGMTest,
	CategoryTestplay,
	CategoryOffsite,
	CategoryVenueRental,
	CategoryVenueRentalFree,
	CategoryPackage,
	CategoryMTG,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// CategoryMeta carries the display metadata the schedule grid renders for a
// category.
type CategoryMeta struct {
	Label      string `json:"label"`
	BadgeColor string `json:"badge_color"`
}

var categoryConfig = map[Category]CategoryMeta{
	CategoryOpen:            {Label: "オープン公演", BadgeColor: "blue"},
	CategoryPrivate:         {Label: "貸切公演", BadgeColor: "purple"},
	CategoryGMTest:          {Label: "GMテスト", BadgeColor: "orange"},
	CategoryTestplay:        {Label: "テストプレイ", BadgeColor: "yellow"},
	CategoryOffsite:         {Label: "出張公演", BadgeColor: "green"},
	CategoryVenueRental:     {Label: "場所貸し", BadgeColor: "cyan"},
	CategoryVenueRentalFree: {Label: "場所貸無料", BadgeColor: "teal"},
	CategoryPackage:         {Label: "パッケージ会", BadgeColor: "pink"},
	CategoryMTG:             {Label: "MTG", BadgeColor: "gray"},
}

func ConfigForCategory(c Category) CategoryMeta {
	return categoryConfig[c]
}

// ScheduleEvent is one scheduled performance or booking occupying a
// (date, venue, time band) slot. A floating private-booking request keeps
// an empty venue until a venue is confirmed.
type ScheduleEvent struct {
	ID                  uint     `json:"id"`
	Date                string   `json:"date"` // YYYY-MM-DD
	Venue               string   `json:"venue"`
	Scenario            string   `json:"scenario"`
	ScenarioID          *uint    `json:"scenario_id,omitempty"`
	StartTime           string   `json:"start_time"` // HH:MM
	EndTime             string   `json:"end_time"`   // HH:MM
	Category            Category `json:"category"`
	GMs                 []string `json:"gms"`
	CurrentParticipants int      `json:"current_participants"`
	MaxParticipants     int      `json:"max_participants"`
	IsCancelled         bool     `json:"is_cancelled"`
	IsTentative         bool     `json:"is_tentative"`
	IsPrivateRequest    bool     `json:"is_private_request"`
	Notes               string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Band reports which time band the event occupies.
func (e ScheduleEvent) Band() TimeBand {
	return BandForStartTime(e.StartTime)
}

// IsFloating reports whether the event is a private-booking request that has
// not been pinned to a venue yet. Floating requests show up in every venue
// column for their date and band.
func (e ScheduleEvent) IsFloating() bool {
	return e.IsPrivateRequest && e.Venue == ""
}

// NeedsAttention reports whether the event is missing a scenario title or
// any assigned GM. These are the events flagged in the schedule header.
func (e ScheduleEvent) NeedsAttention() bool {
	if strings.TrimSpace(e.Scenario) == "" {
		return true
	}
	if len(e.GMs) == 0 {
		return true
	}
	for _, gm := range e.GMs {
		if strings.TrimSpace(gm) != "" {
			return false
		}
	}

	return true
}

// CategoryCounts tallies events per category for the filter bar, plus the
// cancelled and needs-attention counters.
func CategoryCounts(events []ScheduleEvent) map[string]int {
	counts := map[string]int{"all": len(events)}
	for _, c := range Categories {
		counts[string(c)] = 0
	}
	counts["cancelled"] = 0
	counts["alerts"] = 0

	for _, e := range events {
		if e.IsCancelled {
			counts["cancelled"]++
		}
		if _, ok := counts[string(e.Category)]; ok {
			counts[string(e.Category)]++
		}
		if e.NeedsAttention() && !e.IsCancelled {
			counts["alerts"]++
		}
	}

	return counts
}
