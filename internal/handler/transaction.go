package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/model"
	"github.com/seatwell/seatwell-api/internal/repository"
)

// TransactionHandler exposes the purchase audit trail to admins.
type TransactionHandler struct {
	Transactions *repository.TransactionRepo
}

func NewTransactionHandler(transactions *repository.TransactionRepo) *TransactionHandler {
	if transactions == nil {
		panic("nil repository passed to NewTransactionHandler")
	}
	return &TransactionHandler{Transactions: transactions}
}

type transactionOut struct {
	ID          uint64    `json:"id"`
	TicketID    uint64    `json:"ticket_id"`
	BuyerID     uint64    `json:"buyer_id"`
	SellerID    uint64    `json:"seller_id"`
	AmountCents uint32    `json:"amount_cents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTransactionOut(t model.Transaction) transactionOut {
	return transactionOut{
		ID:          t.ID,
		TicketID:    t.TicketID,
		BuyerID:     t.BuyerID,
		SellerID:    t.SellerID,
		AmountCents: t.AmountCents,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}

// List handles GET /v1/transactions (admin), newest first.
func (h *TransactionHandler) List(c echo.Context) error {
	txs, err := h.Transactions.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load transactions"})
	}
	items := make([]transactionOut, 0, len(txs))
	for _, t := range txs {
		items = append(items, toTransactionOut(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
