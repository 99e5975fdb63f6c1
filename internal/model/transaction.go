package model

import "time"

// Transaction records a completed purchase in the `transactions`
// table.  Payment is simulated: the row is written in the same
// database transaction as the ticket status flip, so the audit
// trail can never disagree with ticket state.
//
// Fields:
//  ID          – primary key identifier.
//  TicketID    – the purchased ticket.
//  BuyerID     – purchasing user.
//  SellerID    – selling user, denormalized for audit listings.
//  AmountCents – amount charged, equal to the ticket price.
//  Status      – always "completed" in this service.
//  CreatedAt   – completion timestamp.
type Transaction struct {
	ID          uint64    // transactions.id
	TicketID    uint64    // transactions.ticket_id
	BuyerID     uint64    // transactions.buyer_id
	SellerID    uint64    // transactions.seller_id
	AmountCents uint32    // transactions.amount_cents
	Status      string    // transactions.status
	CreatedAt   time.Time // transactions.created_at
}
