package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/queue"
	"github.com/seatwell/seatwell-api/internal/service"
)

// ContactHandler accepts contact-form submissions and forwards them
// to the message queue for the support workflow.
type ContactHandler struct{}

func NewContactHandler() *ContactHandler { return &ContactHandler{} }

// Submit handles POST /v1/contact.  The message is queued rather
// than stored; if the broker is down the caller gets a 503 and can
// retry.
func (h *ContactHandler) Submit(c echo.Context) error {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	body.Message = strings.TrimSpace(body.Message)
	if body.Name == "" || body.Email == "" || body.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and message are required"})
	}
	if !strings.Contains(body.Email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email"})
	}

	ev := queue.ContactMessageEvent{
		Name:       body.Name,
		Email:      body.Email,
		Subject:    strings.TrimSpace(body.Subject),
		Message:    body.Message,
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := service.PublishContactMessage(c.Request().Context(), ev); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "message could not be delivered, try again later"})
	}
	return c.JSON(http.StatusAccepted, echo.Map{"status": "received"})
}
