package router

import (
	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/handler"
)

// RegisterPublic registers unauthenticated browse endpoints.  Guests
// can list games, inspect seat maps in either mode and read site
// content before creating an account.  The cache middleware sits on
// the read-heavy endpoints; pass the result of middleware.NewRedisCache,
// which degrades to a pass-through when caching is disabled.
func RegisterPublic(e *echo.Echo, g *handler.GameHandler, s *handler.SeatMapHandler, t *handler.TicketHandler, ct *handler.ContentHandler, cf *handler.ContactHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/games", g.List, cache)
	e.GET("/v1/games/:id", g.Get, cache)
	// Seat availability per game.  ?mode=buyer|seller flips the
	// overlay semantics; the mode is part of the cache key because
	// the key hashes path plus query string.
	e.GET("/v1/games/:id/seats", s.GetSeatMap, cache)
	e.GET("/v1/games/:id/tickets", t.ListByGame)

	e.GET("/v1/content", ct.List, cache)
	e.GET("/v1/content/:key", ct.Get, cache)

	e.POST("/v1/contact", cf.Submit)
}
