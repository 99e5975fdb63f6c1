package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/arena"
	"github.com/seatwell/seatwell-api/internal/model"
	"github.com/seatwell/seatwell-api/internal/repository"
)

// TicketLister is the slice of the ticket repository the seat map
// needs: one snapshot of a game's tickets per request.
type TicketLister interface {
	ListByGame(ctx context.Context, gameID uint64) ([]model.Ticket, error)
}

// GameGetter resolves a game id so unknown games 404 instead of
// rendering an empty arena.
type GameGetter interface {
	GetByID(ctx context.Context, id uint64) (model.Game, error)
}

// SeatMapHandler serves the reconciled per-seat availability view.
type SeatMapHandler struct {
	Games   GameGetter
	Tickets TicketLister
}

func NewSeatMapHandler(games GameGetter, tickets TicketLister) *SeatMapHandler {
	if games == nil || tickets == nil {
		panic("nil dependency passed to NewSeatMapHandler")
	}
	return &SeatMapHandler{Games: games, Tickets: tickets}
}

// GetSeatMap handles GET /v1/games/:id/seats?mode=buyer|seller.  It
// fetches the game's ticket snapshot and overlays it onto the
// generated arena layout.  The mode flips availability semantics:
// buyers see open listings, sellers see seats they could list.
func (h *SeatMapHandler) GetSeatMap(c echo.Context) error {
	gameID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
	}
	mode, ok := arena.ParseMode(c.QueryParam("mode"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "mode must be buyer or seller"})
	}

	ctx := c.Request().Context()
	if _, err := h.Games.GetByID(ctx, gameID); err != nil {
		if err == repository.ErrGameNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	tickets, err := h.Tickets.ListByGame(ctx, gameID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tickets"})
	}

	sections := arena.Sections()
	seats := arena.Reconcile(sections, tickets, mode)
	available := 0
	for _, s := range seats {
		if s.Available {
			available++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"game_id":   gameID,
		"mode":      mode,
		"sections":  sections,
		"total":     len(seats),
		"available": available,
		"seats":     seats,
	})
}
