package router

import (
	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/handler"
	"github.com/seatwell/seatwell-api/internal/middleware"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1: game
// management, user administration, the transaction audit trail, site
// content editing and artwork uploads.
func RegisterAdmin(e *echo.Echo, g *handler.GameHandler, u *handler.UserHandler, tr *handler.TransactionHandler, ct *handler.ContentHandler, up *handler.UploadHandler, jwtSecret string) {
	grp := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	grp.POST("/games", g.Create)
	grp.PUT("/games/:id", g.Update)
	grp.PATCH("/games/:id", g.Update) // alias for clients that use PATCH
	grp.DELETE("/games/:id", g.Delete)

	grp.GET("/users", u.List)
	grp.PATCH("/users/:id", u.SetActive)

	grp.GET("/transactions", tr.List)

	grp.PUT("/content/:key", ct.Upsert)

	grp.POST("/uploads", up.Upload)
}
