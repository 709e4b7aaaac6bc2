package raffle

import (
	"github.com/raffleworks/tombola/internal/common/clock"
	"github.com/raffleworks/tombola/internal/common/uuid"
	"github.com/raffleworks/tombola/internal/models"
	"github.com/raffleworks/tombola/internal/oracle"
	raffleRepo "github.com/raffleworks/tombola/internal/repositories/raffle"
)

// Config holds configuration for the raffle service
type Config struct {
	// MaxNumber is the top of the sellable range, defaults to 100
	MaxNumber int

	// MaxDrawAttempts caps oracle calls per draw, defaults to 15
	MaxDrawAttempts int

	// Repository dependency
	Repo raffleRepo.Repository

	// Service dependencies
	Oracle        oracle.Selector
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// BuyTicketInput contains parameters for selling a number
type BuyTicketInput struct {
	// Key is the shift to sell in; a zero key means the shift currently
	// open on the service clock
	Key models.ShiftKey

	// Number the buyer wants, in [1, MaxNumber]
	Number int

	// BuyerName is optional; empty means "Anonymous"
	BuyerName string
}

// BuyTicketOutput contains the result of selling a number
type BuyTicketOutput struct {
	// Key is the shift the ticket was sold in
	Key models.ShiftKey

	// Ticket as committed, with the store-assigned purchase time
	Ticket *models.Ticket
}

// DrawWinnerInput contains parameters for drawing a shift
type DrawWinnerInput struct {
	// Key is the shift to draw; a zero key means the current shift
	Key models.ShiftKey

	// Prize describes what the winner takes home
	Prize string
}

// DrawWinnerOutput contains the result of a successful draw
type DrawWinnerOutput struct {
	// Key is the shift that was drawn
	Key models.ShiftKey

	// WinningNumber is the number that won
	WinningNumber int

	// WinnerName is empty when the winning number was never sold
	WinnerName string

	// Record is the shift record after the draw
	Record *models.ShiftRecord

	// Message is a human-readable confirmation
	Message string
}

// GetShiftInput contains parameters for reading a shift
type GetShiftInput struct {
	// Key is the shift to read; a zero key means the current shift
	Key models.ShiftKey
}

// GetShiftOutput contains the shift ledger record
type GetShiftOutput struct {
	Key    models.ShiftKey
	Record *models.ShiftRecord
}

// ListWinnersInput contains parameters for the winners board
type ListWinnersInput struct {
	// Month in YYYY-MM form; empty means the current month
	Month string
}

// ListWinnersOutput contains a month's winners board
type ListWinnersOutput struct {
	// Month the board covers
	Month string

	// Numbers already used this month, ascending
	Numbers []int

	// Winners in draw order
	Winners []*models.Winner
}

// ClaimPrizeInput contains parameters for a prize claim
type ClaimPrizeInput struct {
	// Key is the drawn shift being claimed
	Key models.ShiftKey

	// ClaimerID identifies who claims, owned by the fulfilment side
	ClaimerID string

	// ClaimerName is the display name of who claims
	ClaimerName string
}

// ClaimPrizeOutput contains the winner projection after the claim
type ClaimPrizeOutput struct {
	Winner *models.Winner
}
