// Package router wires handlers to routes.  Registration is split by
// audience: unauthenticated browsing, authenticated sellers, buyers
// and admins each get their own file so the route surface per role is
// visible at a glance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/handler"
	"github.com/seatwell/seatwell-api/internal/middleware"
)

// RegisterRoutes registers routes that do not belong to any audience.
// Currently only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session lifecycle under /v1/auth plus the
// authenticated /v1/me endpoint.  Any valid role may call /v1/me.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// /refresh rotates the refresh token; /refresh-access only mints a
	// new access token.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("BUYER", "SELLER", "ADMIN"),
	)
	auth.GET("/me", a.Me)
}
