package raffle

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/raffleworks/tombola/internal/repositories/raffle Repository

import (
	"context"
)

// Repository defines the interface for raffle ledger persistence. One
// implementation owns both the per-date shift documents and the per-month
// winner register so a draw can commit across them atomically.
type Repository interface {
	// GetShiftRecord retrieves the record for a shift, returning an empty
	// record when the shift has never been touched
	GetShiftRecord(ctx context.Context, input *GetShiftRecordInput) (*GetShiftRecordOutput, error)

	// AppendTicket appends a ticket to a shift if its number is still free
	AppendTicket(ctx context.Context, input *AppendTicketInput) (*AppendTicketOutput, error)

	// CommitDraw atomically selects and records a shift's winner, adding the
	// number to the month's register in the same transaction
	CommitDraw(ctx context.Context, input *CommitDrawInput) (*CommitDrawOutput, error)

	// WinnersForMonth returns the set of winning numbers used in a month
	WinnersForMonth(ctx context.Context, input *WinnersForMonthInput) (*WinnersForMonthOutput, error)

	// ListWinners returns the drawn shifts of a month in draw order
	ListWinners(ctx context.Context, input *ListWinnersInput) (*ListWinnersOutput, error)

	// MarkPrizeClaimed records the prize-fulfilment claim on a drawn shift
	MarkPrizeClaimed(ctx context.Context, input *MarkPrizeClaimedInput) (*MarkPrizeClaimedOutput, error)
}
