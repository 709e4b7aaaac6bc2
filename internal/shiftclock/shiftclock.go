// Package shiftclock maps wall-clock time onto the raffle's three daily
// shifts. Everything here is pure; callers own the choice of location.
package shiftclock

import (
	"time"

	"github.com/raffleworks/tombola/internal/models"
)

// ShiftFor returns the shift covering the given hour of day
func ShiftFor(hour int) models.Shift {
	switch {
	case hour < 12:
		return models.ShiftMorning
	case hour < 18:
		return models.ShiftAfternoon
	default:
		return models.ShiftNight
	}
}

// At returns the shift key active at the given instant, using the instant's
// own location for both the date and the hour.
func At(t time.Time) models.ShiftKey {
	return models.ShiftKey{
		Date:  t.Format("2006-01-02"),
		Shift: ShiftFor(t.Hour()),
	}
}
