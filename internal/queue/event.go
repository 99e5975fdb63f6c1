// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records sales.
package queue

// Queue names.  Both queues are declared durable by publisher and
// consumer so declarations are idempotent whichever side starts
// first.
const (
	TicketSoldQueue     = "ticket.sold"
	ContactMessageQueue = "contact.message"
)

// TicketSoldEvent is published when a purchase commits.  It carries
// enough information for downstream consumers to log, notify or feed
// analytics without querying the primary database.
type TicketSoldEvent struct {
	TicketID      uint64 `json:"ticket_id"`
	TransactionID uint64 `json:"transaction_id"`
	GameID        uint64 `json:"game_id"`
	HomeTeam      string `json:"home_team"`
	AwayTeam      string `json:"away_team"`
	SeatNumber    string `json:"seat_number"`
	SellerID      uint64 `json:"seller_id"`
	BuyerID       uint64 `json:"buyer_id"`
	AmountCents   uint32 `json:"amount_cents"`
	SoldAt        string `json:"sold_at"`
}

// ContactMessageEvent carries a contact-form submission.  The form
// is not persisted; support tooling consumes the queue instead.
type ContactMessageEvent struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	ReceivedAt string `json:"received_at"`
}
