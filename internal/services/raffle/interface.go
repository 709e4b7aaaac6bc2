package raffle

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/raffleworks/tombola/internal/services/raffle Service

import "context"

// Service defines the interface for raffle operations
type Service interface {
	// BuyTicket sells a number in a shift, rejecting duplicates
	BuyTicket(ctx context.Context, input *BuyTicketInput) (*BuyTicketOutput, error)

	// DrawWinner draws the single winning number of a shift
	DrawWinner(ctx context.Context, input *DrawWinnerInput) (*DrawWinnerOutput, error)

	// GetShift returns the ledger record of a shift
	GetShift(ctx context.Context, input *GetShiftInput) (*GetShiftOutput, error)

	// ListWinners returns a month's winners board and register numbers
	ListWinners(ctx context.Context, input *ListWinnersInput) (*ListWinnersOutput, error)

	// ClaimPrize records the prize claim on a drawn shift
	ClaimPrize(ctx context.Context, input *ClaimPrizeInput) (*ClaimPrizeOutput, error)
}
