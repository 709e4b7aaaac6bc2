package models

import (
	"time"
)

// AnonymousBuyer is the name recorded when a buyer gives none
const AnonymousBuyer = "Anonymous"

// Ticket is one sold number within a shift. Tickets are immutable once
// created; there is no edit or delete.
type Ticket struct {
	// ID is the unique identifier for the ticket
	ID string `json:"id"`

	// Number is the raffle number the buyer took, in [1,100]
	Number int `json:"number"`

	// BuyerName is who bought the number, "Anonymous" when not given
	BuyerName string `json:"buyerName"`

	// PurchasedAt is assigned by the ledger at commit time, not by the
	// caller's clock
	PurchasedAt time.Time `json:"purchasedAt"`
}
