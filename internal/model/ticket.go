package model

import "time"

// Ticket statuses.  A listing is created as available and moves to
// sold through the conditional purchase update; a seller can cancel
// an unsold listing.  Pending exists for parity with imported data
// but nothing in this service transitions into it.
const (
	TicketStatusAvailable = "available"
	TicketStatusPending   = "pending"
	TicketStatusSold      = "sold"
	TicketStatusCancelled = "cancelled"
)

// Ticket is a sellable claim on one arena seat for one game, stored
// in the `tickets` table.  SeatNumber holds the composite seat id
// ("101-1-1") produced by the arena package; the pair
// (game_id, seat_number) is unique so a seat can carry at most one
// listing per game.
//
// Fields:
//  ID         – primary key identifier.
//  GameID     – game the seat is listed for.
//  SellerID   – season-ticket holder who listed the seat.
//  BuyerID    – purchaser (null until sold).
//  SeatNumber – composite seat id within the arena layout.
//  PriceCents – asking price in cents.
//  Status     – available, pending, sold or cancelled.
//  CreatedAt  – when the listing was created.
//  SoldAt     – when the purchase completed (null until sold).
type Ticket struct {
	ID         uint64     // tickets.id
	GameID     uint64     // tickets.game_id
	SellerID   uint64     // tickets.seller_id
	BuyerID    *uint64    // tickets.buyer_id (nullable)
	SeatNumber string     // tickets.seat_number
	PriceCents uint32     // tickets.price_cents
	Status     string     // tickets.status
	CreatedAt  time.Time  // tickets.created_at
	SoldAt     *time.Time // tickets.sold_at (nullable)
}
