package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsForSlot(t *testing.T) {
	events := []ScheduleEvent{
		{ID: 1, Date: "2025-06-14", Venue: "shibuya", StartTime: "10:00", Scenario: "何度だって青い月に火を灯した"},
		{ID: 2, Date: "2025-06-14", Venue: "ikebukuro", StartTime: "10:00", Scenario: "グノーシア"},
		{ID: 3, Date: "2025-06-14", Venue: "shibuya", StartTime: "19:00", Scenario: "星空のマリス"},
		{ID: 4, Date: "2025-06-15", Venue: "shibuya", StartTime: "10:00", Scenario: "別日"},
		// Floating private request, venue not confirmed.
		{ID: 5, Date: "2025-06-14", Venue: "", StartTime: "10:30", IsPrivateRequest: true},
		// Private request pinned to a venue.
		{ID: 6, Date: "2025-06-14", Venue: "ikebukuro", StartTime: "19:00", IsPrivateRequest: true},
	}

	t.Run("filters by date, venue and band", func(t *testing.T) {
		got := EventsForSlot(events, "2025-06-14", "shibuya", BandMorning)
		require.Len(t, got, 2)
		assert.Equal(t, uint(1), got[0].ID)
		assert.Equal(t, uint(5), got[1].ID)
	})

	t.Run("floating private request shows in every venue column", func(t *testing.T) {
		for _, venue := range []string{"shibuya", "ikebukuro", "osaka"} {
			got := EventsForSlot(events, "2025-06-14", venue, BandMorning)
			ids := make([]uint, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Contains(t, ids, uint(5), "venue %v", venue)
		}
	})

	t.Run("confirmed private request only shows in its venue", func(t *testing.T) {
		got := EventsForSlot(events, "2025-06-14", "ikebukuro", BandEvening)
		require.Len(t, got, 1)
		assert.Equal(t, uint(6), got[0].ID)

		got = EventsForSlot(events, "2025-06-14", "shibuya", BandEvening)
		require.Len(t, got, 1)
		assert.Equal(t, uint(3), got[0].ID)
	})

	t.Run("empty slot", func(t *testing.T) {
		assert.Empty(t, EventsForSlot(events, "2025-06-14", "osaka", BandEvening))
	})
}

func TestOccupant(t *testing.T) {
	events := []ScheduleEvent{
		{ID: 1, Date: "2025-06-14", Venue: "shibuya", StartTime: "10:00", IsCancelled: true},
		{ID: 2, Date: "2025-06-14", Venue: "shibuya", StartTime: "10:30"},
		{ID: 3, Date: "2025-06-14", Venue: "", StartTime: "11:00", IsPrivateRequest: true},
	}

	t.Run("skips cancelled and floating events", func(t *testing.T) {
		occupant, occupied := Occupant(events, "2025-06-14", "shibuya", BandMorning, 0)
		require.True(t, occupied)
		assert.Equal(t, uint(2), occupant.ID)
	})

	t.Run("exclude lets an event update in place", func(t *testing.T) {
		_, occupied := Occupant(events, "2025-06-14", "shibuya", BandMorning, 2)
		assert.False(t, occupied)
	})

	t.Run("cancelled occupant does not block", func(t *testing.T) {
		_, occupied := Occupant(events[:1], "2025-06-14", "shibuya", BandMorning, 0)
		assert.False(t, occupied)
	})
}

func TestCategoryCounts(t *testing.T) {
	events := []ScheduleEvent{
		{ID: 1, Category: CategoryOpen, Scenario: "a", GMs: []string{"gm1"}},
		{ID: 2, Category: CategoryOpen, Scenario: "b", GMs: []string{"gm2"}, IsCancelled: true},
		{ID: 3, Category: CategoryPrivate, Scenario: "c", GMs: []string{"gm3"}},
		// Missing GM assignment: counted under alerts.
		{ID: 4, Category: CategoryGMTest, Scenario: "d"},
		// Missing scenario but cancelled: not an alert.
		{ID: 5, Category: CategoryMTG, IsCancelled: true},
	}

	counts := CategoryCounts(events)

	assert.Equal(t, 5, counts["all"])
	assert.Equal(t, 2, counts["open"])
	assert.Equal(t, 1, counts["private"])
	assert.Equal(t, 1, counts["gmtest"])
	assert.Equal(t, 0, counts["testplay"])
	assert.Equal(t, 2, counts["cancelled"])
	assert.Equal(t, 1, counts["alerts"])
}

func TestNeedsAttention(t *testing.T) {
	assert.True(t, ScheduleEvent{}.NeedsAttention())
	assert.True(t, ScheduleEvent{Scenario: "x"}.NeedsAttention())
	assert.True(t, ScheduleEvent{Scenario: "x", GMs: []string{" "}}.NeedsAttention())
	assert.True(t, ScheduleEvent{Scenario: "  ", GMs: []string{"gm"}}.NeedsAttention())
	assert.False(t, ScheduleEvent{Scenario: "x", GMs: []string{"gm"}}.NeedsAttention())
}
