package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/model"
	"github.com/seatwell/seatwell-api/internal/repository"
)

// GameHandler serves public game browsing and the admin game CRUD.
type GameHandler struct {
	Games *repository.GameRepo
}

func NewGameHandler(games *repository.GameRepo) *GameHandler {
	if games == nil {
		panic("nil repository passed to NewGameHandler")
	}
	return &GameHandler{Games: games}
}

type gameReq struct {
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`
	StartsAt time.Time `json:"starts_at"`
	Venue    string    `json:"venue"`
	Status   string    `json:"status"`
	ImageURL string    `json:"image_url"`
}

type gameOut struct {
	ID        uint64    `json:"id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	StartsAt  time.Time `json:"starts_at"`
	Venue     string    `json:"venue"`
	Status    string    `json:"status"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toGameOut(g model.Game) gameOut {
	return gameOut{
		ID:        g.ID,
		HomeTeam:  g.HomeTeam,
		AwayTeam:  g.AwayTeam,
		StartsAt:  g.StartsAt,
		Venue:     g.Venue,
		Status:    g.Status,
		ImageURL:  g.ImageURL,
		CreatedAt: g.CreatedAt,
	}
}

func (r gameReq) validate() (model.Game, string) {
	r.HomeTeam = strings.TrimSpace(r.HomeTeam)
	r.AwayTeam = strings.TrimSpace(r.AwayTeam)
	r.Venue = strings.TrimSpace(r.Venue)
	if r.HomeTeam == "" || r.AwayTeam == "" {
		return model.Game{}, "home_team and away_team are required"
	}
	if r.Venue == "" {
		return model.Game{}, "venue is required"
	}
	if r.StartsAt.IsZero() {
		return model.Game{}, "starts_at is required"
	}
	status := r.Status
	if status == "" {
		status = model.GameStatusUpcoming
	}
	switch status {
	case model.GameStatusUpcoming, model.GameStatusFinished, model.GameStatusCancelled:
	default:
		return model.Game{}, "invalid status"
	}
	return model.Game{
		HomeTeam: r.HomeTeam,
		AwayTeam: r.AwayTeam,
		StartsAt: r.StartsAt.UTC(),
		Venue:    r.Venue,
		Status:   status,
		ImageURL: strings.TrimSpace(r.ImageURL),
	}, ""
}

// List handles GET /v1/games.
func (h *GameHandler) List(c echo.Context) error {
	games, err := h.Games.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load games"})
	}
	items := make([]gameOut, 0, len(games))
	for _, g := range games {
		items = append(items, toGameOut(g))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Get handles GET /v1/games/:id.
func (h *GameHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
	}
	g, err := h.Games.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toGameOut(g)})
}

// Create handles POST /v1/games (admin).
func (h *GameHandler) Create(c echo.Context) error {
	var req gameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	g, msg := req.validate()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if err := h.Games.Create(c.Request().Context(), &g); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create game"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": toGameOut(g)})
}

// Update handles PUT /v1/games/:id (admin).
func (h *GameHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
	}
	var req gameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	g, msg := req.validate()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	g.ID = id
	if err := h.Games.Update(c.Request().Context(), g); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update game"})
	}
	updated, err := h.Games.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reload game"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toGameOut(updated)})
}

// Delete handles DELETE /v1/games/:id (admin).  Games with sold
// tickets are part of the audit trail and respond 409.
func (h *GameHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
	}
	err := h.Games.Delete(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, repository.ErrGameNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "game has sold tickets"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete game"})
	}
}
