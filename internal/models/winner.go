package models

import (
	"time"
)

// MonthlyWinners is the read projection of one month's register: the set of
// winning numbers already used that month. Numbers are only ever added.
type MonthlyWinners struct {
	// Month in YYYY-MM form
	Month string `json:"month"`

	// Numbers already used this month, ascending
	Numbers []int `json:"numbers"`
}

// Contains reports whether a number is already in the month's register
func (m *MonthlyWinners) Contains(number int) bool {
	for _, n := range m.Numbers {
		if n == number {
			return true
		}
	}
	return false
}

// Set returns the register as a membership set
func (m *MonthlyWinners) Set() map[int]struct{} {
	set := make(map[int]struct{}, len(m.Numbers))
	for _, n := range m.Numbers {
		set[n] = struct{}{}
	}
	return set
}

// Winner is the read projection of a drawn shift. It is derived from the
// shift record, never stored separately.
type Winner struct {
	// Date and Shift locate the drawn partition
	Date  string `json:"date"`
	Shift Shift  `json:"shift"`

	// WinningNumber is the number that won
	WinningNumber int `json:"winningNumber"`

	// WinnerName is empty when the winning number was never sold
	WinnerName string `json:"winnerName,omitempty"`

	// Prize describes what was at stake
	Prize string `json:"prize,omitempty"`

	// DrawnAt is when the draw committed
	DrawnAt time.Time `json:"drawnAt"`

	// Claim pass-through state
	Claimed   bool       `json:"claimed"`
	ClaimerID string     `json:"claimerId,omitempty"`
	ClaimedBy string     `json:"claimedByUserName,omitempty"`
	ClaimedAt *time.Time `json:"claimedAt,omitempty"`
}

// WinnerFromRecord projects the draw outcome of a shift record. Returns nil
// when the shift has not been drawn.
func WinnerFromRecord(key ShiftKey, rec *ShiftRecord) *Winner {
	if rec == nil || !rec.Drawn() {
		return nil
	}

	w := &Winner{
		Date:          key.Date,
		Shift:         key.Shift,
		WinningNumber: *rec.WinningNumber,
		WinnerName:    rec.WinnerName,
		Prize:         rec.Prize,
		Claimed:       rec.Claimed,
		ClaimerID:     rec.ClaimerID,
		ClaimedBy:     rec.ClaimedBy,
		ClaimedAt:     rec.ClaimedAt,
	}
	if rec.DrawnAt != nil {
		w.DrawnAt = *rec.DrawnAt
	}
	return w
}
