package router

import (
	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/handler"
	"github.com/seatwell/seatwell-api/internal/middleware"
)

// RegisterSeller registers SELLER-scoped endpoints under /v1.  Admins
// are accepted too so support staff can manage listings on a seller's
// behalf.
func RegisterSeller(e *echo.Echo, t *handler.TicketHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("SELLER", "ADMIN"),
	)
	g.POST("/games/:id/listings", t.CreateListings)
	g.GET("/my-listings", t.MyListings)
	g.DELETE("/tickets/:id", t.Withdraw)
}
