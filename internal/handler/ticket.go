package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/seatwell/seatwell-api/internal/arena"
	"github.com/seatwell/seatwell-api/internal/model"
	"github.com/seatwell/seatwell-api/internal/queue"
	"github.com/seatwell/seatwell-api/internal/repository"
	"github.com/seatwell/seatwell-api/internal/service"
)

// TicketHandler groups the repositories behind listing creation,
// withdrawal and the purchase flow.  Purchase runs its critical
// section in a single database transaction so the status flip and
// the audit row commit or roll back together.
type TicketHandler struct {
	Games        *repository.GameRepo
	Tickets      *repository.TicketRepo
	Transactions *repository.TransactionRepo
}

func NewTicketHandler(games *repository.GameRepo, tickets *repository.TicketRepo, transactions *repository.TransactionRepo) *TicketHandler {
	if games == nil || tickets == nil || transactions == nil {
		panic("nil repository passed to NewTicketHandler")
	}
	return &TicketHandler{Games: games, Tickets: tickets, Transactions: transactions}
}

type ticketOut struct {
	ID         uint64     `json:"id"`
	GameID     uint64     `json:"game_id"`
	SellerID   uint64     `json:"seller_id"`
	BuyerID    *uint64    `json:"buyer_id,omitempty"`
	SeatNumber string     `json:"seat_number"`
	PriceCents uint32     `json:"price_cents"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	SoldAt     *time.Time `json:"sold_at,omitempty"`
}

func toTicketOut(t model.Ticket) ticketOut {
	return ticketOut{
		ID:         t.ID,
		GameID:     t.GameID,
		SellerID:   t.SellerID,
		BuyerID:    t.BuyerID,
		SeatNumber: t.SeatNumber,
		PriceCents: t.PriceCents,
		Status:     t.Status,
		CreatedAt:  t.CreatedAt,
		SoldAt:     t.SoldAt,
	}
}

func toTicketOuts(ts []model.Ticket) []ticketOut {
	out := make([]ticketOut, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTicketOut(t))
	}
	return out
}

// ListByGame handles GET /v1/games/:id/tickets and returns the raw
// listing rows for a game.  Clients that want availability per seat
// use the seat-map endpoint instead.
func (h *TicketHandler) ListByGame(c echo.Context) error {
	gameID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Games.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	tickets, err := h.Tickets.ListByGame(ctx, gameID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tickets"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": toTicketOuts(tickets), "count": len(tickets)})
}

// CreateListings handles POST /v1/games/:id/listings.  A seller
// submits the seat ids picked in the seller-mode seat map plus one
// asking price applied to all of them.  Every seat id must address a
// real seat in the arena layout; orphan ids are rejected here
// instead of being silently absorbed later by the reconciler.
func (h *TicketHandler) CreateListings(c echo.Context) error {
	sellerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	gameID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
	}
	var body struct {
		SeatIDs    []string `json:"seat_ids"`
		PriceCents uint32   `json:"price_cents"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.SeatIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_ids is required"})
	}
	if body.PriceCents == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_cents must be positive"})
	}

	// dedupe while preserving submission order
	unique := make([]string, 0, len(body.SeatIDs))
	seen := make(map[string]struct{}, len(body.SeatIDs))
	for _, id := range body.SeatIDs {
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}

	sections := arena.Sections()
	invalid := make([]string, 0)
	for _, id := range unique {
		if !arena.ContainsSeat(sections, id) {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "seat ids outside the arena layout",
			"invalid": invalid,
		})
	}

	ctx := c.Request().Context()
	game, err := h.Games.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if game.Status != model.GameStatusUpcoming {
		return c.JSON(http.StatusConflict, echo.Map{"error": "game is not open for listings"})
	}

	created := make([]ticketOut, 0, len(unique))
	taken := make([]string, 0)
	for _, seatID := range unique {
		t := model.Ticket{
			GameID:     gameID,
			SellerID:   sellerID,
			SeatNumber: seatID,
			PriceCents: body.PriceCents,
		}
		if err := h.Tickets.Create(ctx, &t); err != nil {
			if errors.Is(err, repository.ErrSeatTaken) {
				taken = append(taken, seatID)
				continue
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create listing"})
		}
		created = append(created, toTicketOut(t))
	}
	if len(created) == 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "all requested seats are already listed",
			"taken": taken,
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"items": created,
		"taken": taken,
	})
}

// Withdraw handles DELETE /v1/tickets/:id.  Only the owning seller
// can withdraw, and only while the listing is still open.
func (h *TicketHandler) Withdraw(c echo.Context) error {
	sellerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket id"})
	}
	err = h.Tickets.Cancel(c.Request().Context(), id, sellerID)
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, repository.ErrTicketNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "listing is no longer open"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to withdraw listing"})
	}
}

// Purchase handles POST /v1/tickets/:id/purchase.  The status flip
// is a conditional update guarded by status='available', so two
// racing buyers cannot both succeed: the loser gets a 409.  The
// audit transaction commits atomically with the flip; the sale event
// is published after commit on a best-effort basis.
func (h *TicketHandler) Purchase(c echo.Context) error {
	buyerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket id"})
	}

	ctx := c.Request().Context()
	tx, err := h.Tickets.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	ticket, err := h.Tickets.MarkSoldTx(ctx, tx, id, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTicketNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "ticket is no longer available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to purchase ticket"})
		}
	}
	txn := model.Transaction{
		TicketID:    ticket.ID,
		BuyerID:     buyerID,
		SellerID:    ticket.SellerID,
		AmountCents: ticket.PriceCents,
		Status:      "completed",
	}
	if err := h.Transactions.CreateTx(ctx, tx, &txn); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record transaction"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	h.publishSale(ticket, txn)

	return c.JSON(http.StatusOK, echo.Map{
		"ticket":      toTicketOut(ticket),
		"transaction": txn.ID,
		"amount":      txn.AmountCents,
	})
}

// publishSale emits the ticket.sold event.  Failures only cost the
// downstream sales log, never the purchase, so they are logged and
// dropped.
func (h *TicketHandler) publishSale(ticket model.Ticket, txn model.Transaction) {
	game, err := h.Games.GetByID(context.Background(), ticket.GameID)
	if err != nil {
		log.Printf("ticket.sold: load game %d failed: %v", ticket.GameID, err)
		return
	}
	soldAt := time.Now().UTC()
	if ticket.SoldAt != nil {
		soldAt = *ticket.SoldAt
	}
	ev := queue.TicketSoldEvent{
		TicketID:      ticket.ID,
		TransactionID: txn.ID,
		GameID:        game.ID,
		HomeTeam:      game.HomeTeam,
		AwayTeam:      game.AwayTeam,
		SeatNumber:    ticket.SeatNumber,
		SellerID:      ticket.SellerID,
		BuyerID:       txn.BuyerID,
		AmountCents:   txn.AmountCents,
		SoldAt:        soldAt.Format(time.RFC3339),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = service.PublishTicketSold(ctx, ev)
}

// MyListings handles GET /v1/my-listings for sellers.
func (h *TicketHandler) MyListings(c echo.Context) error {
	sellerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	tickets, err := h.Tickets.ListBySeller(c.Request().Context(), sellerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load listings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": toTicketOuts(tickets), "count": len(tickets)})
}

// MyTickets handles GET /v1/my-tickets for buyers.
func (h *TicketHandler) MyTickets(c echo.Context) error {
	buyerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	tickets, err := h.Tickets.ListByBuyer(c.Request().Context(), buyerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tickets"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": toTicketOuts(tickets), "count": len(tickets)})
}

// QRCode handles GET /v1/tickets/:id/qr.  It renders the entry pass
// for a purchased ticket as a PNG; only the buyer who owns the
// ticket can fetch it.
func (h *TicketHandler) QRCode(c echo.Context) error {
	buyerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket id"})
	}
	ticket, err := h.Tickets.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if ticket.Status != model.TicketStatusSold || ticket.BuyerID == nil || *ticket.BuyerID != buyerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	payload := fmt.Sprintf("seatwell:ticket:%d:game:%d:seat:%s", ticket.ID, ticket.GameID, ticket.SeatNumber)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to render qr code"})
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
