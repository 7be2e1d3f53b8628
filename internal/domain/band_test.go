package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandForStartTime(t *testing.T) {
	tests := []struct {
		startTime string
		want      TimeBand
	}{
		{"00:00", BandMorning},
		{"09:30", BandMorning},
		{"11:59", BandMorning},
		{"12:00", BandAfternoon},
		{"15:00", BandAfternoon},
		{"17:59", BandAfternoon},
		{"18:00", BandEvening},
		{"19:30", BandEvening},
		{"23:00", BandEvening},
		// Malformed times bucket as hour 0.
		{"", BandMorning},
		{"abc", BandMorning},
		{"noon", BandMorning},
		{"9", BandMorning},
		{"19", BandEvening},
	}

	for _, tt := range tests {
		t.Run(tt.startTime, func(t *testing.T) {
			assert.Equal(t, tt.want, BandForStartTime(tt.startTime))
		})
	}
}

func TestTimeBandIsValid(t *testing.T) {
	assert.True(t, BandMorning.IsValid())
	assert.True(t, BandAfternoon.IsValid())
	assert.True(t, BandEvening.IsValid())
	assert.False(t, TimeBand("night").IsValid())
	assert.False(t, TimeBand("").IsValid())
}

func TestDefaultTimes(t *testing.T) {
	assert.Equal(t, SlotTimes{StartTime: "10:00", EndTime: "14:00"}, DefaultTimes(BandMorning))
	assert.Equal(t, SlotTimes{StartTime: "14:30", EndTime: "18:30"}, DefaultTimes(BandAfternoon))
	assert.Equal(t, SlotTimes{StartTime: "19:00", EndTime: "23:00"}, DefaultTimes(BandEvening))
}
