package models

import (
	"fmt"
	"time"
)

// Shift identifies one of the three daily sale windows
type Shift string

const (
	// ShiftMorning covers 00:00 to 11:59
	ShiftMorning Shift = "shift1"

	// ShiftAfternoon covers 12:00 to 17:59
	ShiftAfternoon Shift = "shift2"

	// ShiftNight covers 18:00 to 23:59
	ShiftNight Shift = "shift3"
)

// Valid reports whether s is one of the three known shifts
func (s Shift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftNight:
		return true
	}
	return false
}

// Label returns the human-readable name of the shift
func (s Shift) Label() string {
	switch s {
	case ShiftMorning:
		return "morning"
	case ShiftAfternoon:
		return "afternoon"
	case ShiftNight:
		return "night"
	}
	return string(s)
}

// ShiftKey identifies a single sale/draw partition. It is derived from
// wall-clock time and only ever used as a lookup key, never stored on its own.
type ShiftKey struct {
	// Date is the calendar date in YYYY-MM-DD form
	Date string

	// Shift is the daily window within the date
	Shift Shift
}

// IsZero reports whether the key has not been populated
func (k ShiftKey) IsZero() bool {
	return k.Date == "" && k.Shift == ""
}

// Month returns the YYYY-MM prefix of the key's date
func (k ShiftKey) Month() string {
	if len(k.Date) < 7 {
		return k.Date
	}
	return k.Date[:7]
}

// String renders the key in date#shift form, used as an index member
func (k ShiftKey) String() string {
	return fmt.Sprintf("%s#%s", k.Date, k.Shift)
}

// ParseShiftKey parses a date#shift index member back into a key
func ParseShiftKey(s string) (ShiftKey, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == '#' {
			key := ShiftKey{Date: s[:i], Shift: Shift(s[i+1:])}
			if !key.Shift.Valid() {
				return ShiftKey{}, fmt.Errorf("unknown shift %q", s[i+1:])
			}
			return key, nil
		}
	}
	return ShiftKey{}, fmt.Errorf("malformed shift key %q", s)
}

// ShiftRecord holds everything that happened in one shift: the tickets sold,
// the draw outcome once a winner exists, and prize claim pass-through state.
type ShiftRecord struct {
	// Tickets in insertion order; numbers are unique within the record
	Tickets []*Ticket `json:"tickets"`

	// WinningNumber is set exactly once, by the draw commit
	WinningNumber *int `json:"winningNumber,omitempty"`

	// WinnerName is the buyer name of the winning ticket, "Anonymous" when
	// the ticket carried no name, empty when no ticket matches the number
	WinnerName string `json:"winnerName,omitempty"`

	// Prize describes what the winner takes home
	Prize string `json:"prize,omitempty"`

	// DrawnAt is when the winner was committed
	DrawnAt *time.Time `json:"drawnAt,omitempty"`

	// Claim state is owned by the prize-fulfilment side and carried here
	// as-is
	Claimed   bool       `json:"claimed,omitempty"`
	ClaimerID string     `json:"claimerId,omitempty"`
	ClaimedBy string     `json:"claimedByUserName,omitempty"`
	ClaimedAt *time.Time `json:"claimedAt,omitempty"`
}

// NewShiftRecord returns an empty record with no tickets and no winner
func NewShiftRecord() *ShiftRecord {
	return &ShiftRecord{Tickets: []*Ticket{}}
}

// Drawn reports whether a winner has been committed for this shift
func (r *ShiftRecord) Drawn() bool {
	return r.WinningNumber != nil
}

// HasTicket reports whether a ticket with the given number was sold
func (r *ShiftRecord) HasTicket(number int) bool {
	return r.TicketByNumber(number) != nil
}

// TicketByNumber returns the ticket holding the given number, or nil
func (r *ShiftRecord) TicketByNumber(number int) *Ticket {
	for _, t := range r.Tickets {
		if t.Number == number {
			return t
		}
	}
	return nil
}

// DayRecord is the persisted document for one calendar date, holding the
// three shift sub-records. Absent shifts are nil until first touched.
type DayRecord struct {
	Shift1 *ShiftRecord `json:"shift1,omitempty"`
	Shift2 *ShiftRecord `json:"shift2,omitempty"`
	Shift3 *ShiftRecord `json:"shift3,omitempty"`
}

// Record returns the sub-record for the given shift, allocating an empty one
// in place if the shift has not been touched yet.
func (d *DayRecord) Record(s Shift) *ShiftRecord {
	slot := d.slot(s)
	if slot == nil {
		return nil
	}
	if *slot == nil {
		*slot = NewShiftRecord()
	}
	if (*slot).Tickets == nil {
		(*slot).Tickets = []*Ticket{}
	}
	return *slot
}

func (d *DayRecord) slot(s Shift) **ShiftRecord {
	switch s {
	case ShiftMorning:
		return &d.Shift1
	case ShiftAfternoon:
		return &d.Shift2
	case ShiftNight:
		return &d.Shift3
	}
	return nil
}
