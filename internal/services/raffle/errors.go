package raffle

import "errors"

// Domain errors returned at the engine boundary. Nothing here is fatal to
// the caller; every operation degrades to a reported failure.
var (
	// ErrInvalidNumber is returned when a number falls outside the sellable range
	ErrInvalidNumber = errors.New("number is outside the sellable range")

	// ErrNumberAlreadySold is returned when the number is taken in this shift
	ErrNumberAlreadySold = errors.New("number already sold for this shift")

	// ErrAlreadyDrawn is returned when the shift already has a winner
	ErrAlreadyDrawn = errors.New("shift has already been drawn")

	// ErrNoTicketsSold is returned when a draw is attempted on an empty shift
	ErrNoTicketsSold = errors.New("no tickets sold for this shift")

	// ErrNoUniqueNumberFound is returned when the oracle exhausted its
	// attempt budget without producing a number unused this month. The shift
	// stays drawable.
	ErrNoUniqueNumberFound = errors.New("no unique number found within the attempt budget")

	// ErrNotDrawn is returned when a claim arrives before the draw
	ErrNotDrawn = errors.New("shift has not been drawn")

	// ErrPrizeAlreadyClaimed is returned when the prize was claimed before
	ErrPrizeAlreadyClaimed = errors.New("prize has already been claimed")

	// Constructor validation
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilRepository = errors.New("raffle repository cannot be nil")
	ErrNilOracle     = errors.New("winner oracle cannot be nil")
)
