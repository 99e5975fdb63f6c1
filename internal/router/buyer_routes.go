package router

import (
	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/handler"
	"github.com/seatwell/seatwell-api/internal/middleware"
)

// RegisterBuyer registers BUYER-scoped endpoints under /v1: the
// purchase flow, the buyer's ticket wallet and the entry pass.
func RegisterBuyer(e *echo.Echo, t *handler.TicketHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("BUYER", "ADMIN"),
	)
	g.POST("/tickets/:id/purchase", t.Purchase)
	g.GET("/my-tickets", t.MyTickets)
	g.GET("/tickets/:id/qr", t.QRCode)
}
