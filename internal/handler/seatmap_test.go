package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/seatwell/seatwell-api/internal/arena"
	"github.com/seatwell/seatwell-api/internal/model"
	"github.com/seatwell/seatwell-api/internal/repository"
)

type stubStore struct {
	games   map[uint64]model.Game
	tickets []model.Ticket
}

func (s *stubStore) GetByID(_ context.Context, id uint64) (model.Game, error) {
	g, ok := s.games[id]
	if !ok {
		return model.Game{}, repository.ErrGameNotFound
	}
	return g, nil
}

func (s *stubStore) ListByGame(context.Context, uint64) ([]model.Ticket, error) {
	return s.tickets, nil
}

func seatMapRequest(t *testing.T, h *SeatMapHandler, gameID, query string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/games/"+gameID+"/seats"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/games/:id/seats")
	c.SetParamNames("id")
	c.SetParamValues(gameID)
	return rec, h.GetSeatMap(c)
}

type seatMapResp struct {
	GameID    uint64       `json:"game_id"`
	Mode      string       `json:"mode"`
	Total     int          `json:"total"`
	Available int          `json:"available"`
	Seats     []arena.Seat `json:"seats"`
}

func TestGetSeatMapBuyerDefault(t *testing.T) {
	store := &stubStore{
		games: map[uint64]model.Game{1: {ID: 1, HomeTeam: "Home", AwayTeam: "Away"}},
		tickets: []model.Ticket{
			{ID: 42, GameID: 1, SeatNumber: "101-1-1", PriceCents: 9900, Status: model.TicketStatusAvailable},
		},
	}
	rec, err := seatMapRequest(t, NewSeatMapHandler(store, store), "1", "")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp seatMapResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "buyer", resp.Mode)
	require.Equal(t, arena.TotalSeats(arena.Sections()), resp.Total)
	require.Equal(t, 1, resp.Available, "exactly the listed seat is purchasable")
	require.Len(t, resp.Seats, resp.Total)
}

func TestGetSeatMapSellerMode(t *testing.T) {
	store := &stubStore{
		games: map[uint64]model.Game{1: {ID: 1}},
		tickets: []model.Ticket{
			{ID: 42, GameID: 1, SeatNumber: "101-1-1", PriceCents: 9900, Status: model.TicketStatusAvailable},
		},
	}
	rec, err := seatMapRequest(t, NewSeatMapHandler(store, store), "1", "?mode=seller")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp seatMapResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "seller", resp.Mode)
	require.Equal(t, resp.Total-1, resp.Available, "every seat but the listed one is listable")
}

func TestGetSeatMapUnknownGame(t *testing.T) {
	store := &stubStore{games: map[uint64]model.Game{}}
	rec, err := seatMapRequest(t, NewSeatMapHandler(store, store), "99", "")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSeatMapBadInput(t *testing.T) {
	store := &stubStore{games: map[uint64]model.Game{1: {ID: 1}}}
	h := NewSeatMapHandler(store, store)

	rec, err := seatMapRequest(t, h, "abc", "")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, err = seatMapRequest(t, h, "1", "?mode=admin")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
