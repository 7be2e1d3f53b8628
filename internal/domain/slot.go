package domain

// Slot is the unit of scheduling occupancy.
type Slot struct {
	Date  string   `json:"date"`
	Venue string   `json:"venue"`
	Band  TimeBand `json:"band"`
}

// EventsForSlot filters events down to the ones occupying the given slot.
//
// A floating private-booking request (no confirmed venue) is present in
// every venue's cell for its date and band, so staff see it no matter which
// venue column they are looking at. Once a venue is confirmed the request is
// filtered like any other event. The result is not deduplicated; callers
// must not assume at most one occupant.
func EventsForSlot(events []ScheduleEvent, date, venue string, band TimeBand) []ScheduleEvent {
	var out []ScheduleEvent
	for _, e := range events {
		if e.Date != date || e.Band() != band {
			continue
		}

		if e.IsPrivateRequest {
			if e.Venue != "" {
				if e.Venue == venue {
					out = append(out, e)
				}
				continue
			}
			// Venue not confirmed yet: visible everywhere.
			out = append(out, e)
			continue
		}

		if e.Venue == venue {
			out = append(out, e)
		}
	}

	return out
}

// Occupant returns the first non-cancelled event occupying the slot, if any.
// Floating private requests don't block a slot; they have no venue to
// collide with yet.
func Occupant(events []ScheduleEvent, date, venue string, band TimeBand, excludeID uint) (ScheduleEvent, bool) {
	for _, e := range EventsForSlot(events, date, venue, band) {
		if e.IsCancelled || e.IsFloating() {
			continue
		}
		if excludeID != 0 && e.ID == excludeID {
			continue
		}

		return e, true
	}

	return ScheduleEvent{}, false
}
