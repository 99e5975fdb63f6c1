package middleware

// identity.go holds the helper the rate limiter uses to attribute a
// request to a caller.  JWTAuth stores the raw "sub" claim in the
// context; unauthenticated requests are grouped under "anon".

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID renders the authenticated user id as a string for
// rate-limit keys, or "anon" when the request carries no identity.
func currentUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return fmt.Sprintf("%.0f", t)
	case uint64:
		return fmt.Sprintf("%d", t)
	}
	return "anon"
}
