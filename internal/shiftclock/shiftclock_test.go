package shiftclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/raffleworks/tombola/internal/models"
)

func TestShiftFor(t *testing.T) {
	tests := []struct {
		hour int
		want models.Shift
	}{
		{0, models.ShiftMorning},
		{6, models.ShiftMorning},
		{11, models.ShiftMorning},
		{12, models.ShiftAfternoon},
		{15, models.ShiftAfternoon},
		{17, models.ShiftAfternoon},
		{18, models.ShiftNight},
		{21, models.ShiftNight},
		{23, models.ShiftNight},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShiftFor(tt.hour), "hour %d", tt.hour)
	}
}

func TestAt(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want models.ShiftKey
	}{
		{
			name: "midnight opens the morning shift",
			at:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			want: models.ShiftKey{Date: "2024-05-01", Shift: models.ShiftMorning},
		},
		{
			name: "last minute of the morning shift",
			at:   time.Date(2024, 5, 1, 11, 59, 59, 0, time.UTC),
			want: models.ShiftKey{Date: "2024-05-01", Shift: models.ShiftMorning},
		},
		{
			name: "noon opens the afternoon shift",
			at:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			want: models.ShiftKey{Date: "2024-05-01", Shift: models.ShiftAfternoon},
		},
		{
			name: "last minute of the afternoon shift",
			at:   time.Date(2024, 5, 1, 17, 59, 0, 0, time.UTC),
			want: models.ShiftKey{Date: "2024-05-01", Shift: models.ShiftAfternoon},
		},
		{
			name: "six pm opens the night shift",
			at:   time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
			want: models.ShiftKey{Date: "2024-05-01", Shift: models.ShiftNight},
		},
		{
			name: "last minute of the day stays in the night shift",
			at:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			want: models.ShiftKey{Date: "2024-12-31", Shift: models.ShiftNight},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, At(tt.at))
		})
	}
}

func TestAtUsesTimestampLocation(t *testing.T) {
	// 23:00 UTC on the 1st is 01:00 on the 2nd at UTC+2; the key must follow
	// the timestamp's own location.
	loc := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC).In(loc)

	key := At(at)
	assert.Equal(t, "2024-05-02", key.Date)
	assert.Equal(t, models.ShiftMorning, key.Shift)
}
