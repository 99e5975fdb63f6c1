package repository

import (
	"context"
	"database/sql"

	"github.com/seatwell/seatwell-api/internal/model"
)

// TransactionRepo encapsulates database operations for the purchase
// audit trail.
type TransactionRepo struct{ db *sql.DB }

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// CreateTx inserts a transaction row inside the caller's database
// transaction and fills in its ID.  The purchase handler runs this
// in the same transaction as the ticket status flip so the audit
// trail cannot disagree with ticket state.
func (r *TransactionRepo) CreateTx(ctx context.Context, tx *sql.Tx, t *model.Transaction) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO transactions (ticket_id, buyer_id, seller_id, amount_cents, status) VALUES (?,?,?,?,?)",
		t.TicketID, t.BuyerID, t.SellerID, t.AmountCents, t.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// List returns all transactions, newest first.
func (r *TransactionRepo) List(ctx context.Context) ([]model.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,ticket_id,buyer_id,seller_id,amount_cents,status,created_at FROM transactions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	txs := make([]model.Transaction, 0, 32)
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.TicketID, &t.BuyerID, &t.SellerID, &t.AmountCents, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
