package raffle

import (
	"github.com/raffleworks/tombola/internal/models"
)

// SelectFunc chooses the winning number for a draw. It runs inside the draw
// transaction against the snapshot the transaction read: the shift record and
// the membership set of numbers already used this month. Returning an error
// aborts the draw with nothing committed. The function may run more than once
// if the transaction is retried after a conflicting write.
type SelectFunc func(record *models.ShiftRecord, used map[int]struct{}) (int, error)

// GetShiftRecordInput contains parameters for reading a shift record
type GetShiftRecordInput struct {
	// Key identifies the shift partition
	Key models.ShiftKey
}

// GetShiftRecordOutput contains the shift record, never nil
type GetShiftRecordOutput struct {
	Record *models.ShiftRecord
}

// AppendTicketInput contains parameters for appending a ticket
type AppendTicketInput struct {
	// Key identifies the shift partition
	Key models.ShiftKey

	// Ticket to append; PurchasedAt is overwritten at commit time
	Ticket *models.Ticket
}

// AppendTicketOutput contains the ticket as committed
type AppendTicketOutput struct {
	Ticket *models.Ticket
}

// CommitDrawInput contains parameters for committing a draw
type CommitDrawInput struct {
	// Key identifies the shift partition
	Key models.ShiftKey

	// Select chooses the winning number from the transaction's snapshot
	Select SelectFunc

	// Prize describes what the winner takes home
	Prize string
}

// CommitDrawOutput contains the committed draw outcome
type CommitDrawOutput struct {
	// Record is the shift record after the commit
	Record *models.ShiftRecord

	// WinningNumber is the number that won
	WinningNumber int

	// WinnerName is empty when the winning number was never sold
	WinnerName string
}

// WinnersForMonthInput contains parameters for reading a month's register
type WinnersForMonthInput struct {
	// Month in YYYY-MM form
	Month string
}

// WinnersForMonthOutput contains the month's register, never nil
type WinnersForMonthOutput struct {
	Winners *models.MonthlyWinners
}

// ListWinnersInput contains parameters for listing a month's drawn shifts
type ListWinnersInput struct {
	// Month in YYYY-MM form
	Month string
}

// ListWinnersOutput contains winner projections in draw order
type ListWinnersOutput struct {
	Winners []*models.Winner
}

// MarkPrizeClaimedInput contains parameters for recording a prize claim
type MarkPrizeClaimedInput struct {
	// Key identifies the drawn shift
	Key models.ShiftKey

	// ClaimerID identifies who claims, owned by the fulfilment side
	ClaimerID string

	// ClaimerName is the display name of who claims
	ClaimerName string
}

// MarkPrizeClaimedOutput contains the winner projection after the claim
type MarkPrizeClaimedOutput struct {
	Winner *models.Winner
}
