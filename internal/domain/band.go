package domain

import "strings"

// TimeBand is one of the three fixed daily scheduling periods. Every event
// belongs to exactly one band, derived from its start hour.
type TimeBand string

const (
	BandMorning   TimeBand = "morning"
	BandAfternoon TimeBand = "afternoon"
	BandEvening   TimeBand = "evening"
)

func (b TimeBand) IsValid() bool {
	switch b {
	case BandMorning, BandAfternoon, BandEvening:
		return true
	}

	return false
}

// BandForStartTime maps a "HH:MM" start time to its band:
// hour < 12 is morning, 12-17 is afternoon, 18 and later is evening.
// A start time whose hour doesn't parse is treated as hour 0 and lands in
// morning, which matches how the schedule grid has always bucketed blank
// rows from imports.
func BandForStartTime(startTime string) TimeBand {
	hour := leadingInt(strings.SplitN(startTime, ":", 2)[0])

	switch {
	case hour < 12:
		return BandMorning
	case hour <= 17:
		return BandAfternoon
	default:
		return BandEvening
	}
}

// leadingInt parses the leading decimal digits of s, returning 0 when there
// are none.
func leadingInt(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}

	return n
}

// SlotTimes holds the default start/end times pre-filled when staff add an
// event to an empty cell.
type SlotTimes struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

var bandDefaults = map[TimeBand]SlotTimes{
	BandMorning:   {StartTime: "10:00", EndTime: "14:00"},
	BandAfternoon: {StartTime: "14:30", EndTime: "18:30"},
	BandEvening:   {StartTime: "19:00", EndTime: "23:00"},
}

func DefaultTimes(band TimeBand) SlotTimes {
	return bandDefaults[band]
}
