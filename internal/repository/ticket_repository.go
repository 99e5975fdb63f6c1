package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/seatwell/seatwell-api/internal/model"
)

// Sentinel errors for ticket operations.
var (
	// ErrTicketNotFound is returned when a ticket id does not exist.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrSeatTaken is returned when a listing collides with the
	// unique (game_id, seat_number) key, i.e. the seat already
	// carries a ticket for that game.
	ErrSeatTaken = errors.New("seat already listed for this game")
)

// TicketRepo encapsulates database operations for tickets.
type TicketRepo struct{ db *sql.DB }

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

// DB exposes the underlying handle so handlers can run the purchase
// flow in a single transaction together with TransactionRepo.
func (r *TicketRepo) DB() *sql.DB { return r.db }

const ticketCols = "id,game_id,seller_id,buyer_id,seat_number,price_cents,status,created_at,sold_at"

func scanTicket(scan func(dest ...any) error) (model.Ticket, error) {
	var t model.Ticket
	var buyer sql.NullInt64
	var soldAt sql.NullTime
	err := scan(&t.ID, &t.GameID, &t.SellerID, &buyer, &t.SeatNumber, &t.PriceCents, &t.Status, &t.CreatedAt, &soldAt)
	if buyer.Valid {
		id := uint64(buyer.Int64)
		t.BuyerID = &id
	}
	if soldAt.Valid {
		at := soldAt.Time
		t.SoldAt = &at
	}
	return t, err
}

func collectTickets(rows *sql.Rows) ([]model.Ticket, error) {
	defer rows.Close()
	tickets := make([]model.Ticket, 0, 32)
	for rows.Next() {
		t, err := scanTicket(rows.Scan)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// ListByGame returns every ticket row for a game in insertion order.
// This is the snapshot the seat-map reconciler consumes.
func (r *TicketRepo) ListByGame(ctx context.Context, gameID uint64) ([]model.Ticket, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+ticketCols+" FROM tickets WHERE game_id=? ORDER BY id ASC", gameID)
	if err != nil {
		return nil, err
	}
	return collectTickets(rows)
}

// ListBySeller returns all listings created by a seller, newest first.
func (r *TicketRepo) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Ticket, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+ticketCols+" FROM tickets WHERE seller_id=? ORDER BY created_at DESC, id DESC", sellerID)
	if err != nil {
		return nil, err
	}
	return collectTickets(rows)
}

// ListByBuyer returns all tickets purchased by a buyer, newest first.
func (r *TicketRepo) ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Ticket, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+ticketCols+" FROM tickets WHERE buyer_id=? ORDER BY sold_at DESC, id DESC", buyerID)
	if err != nil {
		return nil, err
	}
	return collectTickets(rows)
}

// GetByID fetches one ticket.  ErrTicketNotFound when the id is
// unknown.
func (r *TicketRepo) GetByID(ctx context.Context, id uint64) (model.Ticket, error) {
	t, err := scanTicket(r.db.QueryRowContext(ctx,
		"SELECT "+ticketCols+" FROM tickets WHERE id=? LIMIT 1", id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Ticket{}, ErrTicketNotFound
	}
	return t, err
}

// Create inserts one listing with status available and fills in its
// ID.  The unique (game_id, seat_number) key turns a duplicate
// listing into ErrSeatTaken.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tickets (game_id, seller_id, seat_number, price_cents, status) VALUES (?,?,?,?,?)",
		t.GameID, t.SellerID, t.SeatNumber, t.PriceCents, model.TicketStatusAvailable)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrSeatTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	t.Status = model.TicketStatusAvailable
	return nil
}

// MarkSoldTx performs the conditional available->sold transition
// inside the caller's transaction.  The WHERE clause on status makes
// the update atomic: of two racing buyers exactly one affects a row,
// the other gets ErrConflict (or ErrTicketNotFound when the id never
// existed).  It returns the ticket as it was sold.
func (r *TicketRepo) MarkSoldTx(ctx context.Context, tx *sql.Tx, id, buyerID uint64) (model.Ticket, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE tickets SET status=?, buyer_id=?, sold_at=NOW() WHERE id=? AND status=?",
		model.TicketStatusSold, buyerID, id, model.TicketStatusAvailable)
	if err != nil {
		return model.Ticket{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Ticket{}, err
	}
	if n == 0 {
		var status string
		err := tx.QueryRowContext(ctx, "SELECT status FROM tickets WHERE id=? LIMIT 1", id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return model.Ticket{}, ErrTicketNotFound
		}
		if err != nil {
			return model.Ticket{}, err
		}
		return model.Ticket{}, ErrConflict
	}
	t, err := scanTicket(tx.QueryRowContext(ctx,
		"SELECT "+ticketCols+" FROM tickets WHERE id=? LIMIT 1", id).Scan)
	if err != nil {
		return model.Ticket{}, err
	}
	return t, nil
}

// Cancel withdraws an unsold listing on behalf of its seller.  The
// returned error separates missing tickets, foreign ownership and
// listings that are no longer available.
func (r *TicketRepo) Cancel(ctx context.Context, id, sellerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tickets SET status=? WHERE id=? AND seller_id=? AND status=?",
		model.TicketStatusCancelled, id, sellerID, model.TicketStatusAvailable)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.SellerID != sellerID {
		return ErrForbidden
	}
	return ErrConflict
}
