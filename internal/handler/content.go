package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/model"
	"github.com/seatwell/seatwell-api/internal/repository"
)

// ContentHandler serves editable site copy.  Reads are public so
// landing pages can render without auth; writes are admin only.
type ContentHandler struct {
	Content *repository.ContentRepo
}

func NewContentHandler(content *repository.ContentRepo) *ContentHandler {
	if content == nil {
		panic("nil repository passed to NewContentHandler")
	}
	return &ContentHandler{Content: content}
}

type contentOut struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	ContentType string    `json:"content_type"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toContentOut(c model.SiteContent) contentOut {
	return contentOut{Key: c.Key, Value: c.Value, ContentType: c.ContentType, UpdatedAt: c.UpdatedAt}
}

// List handles GET /v1/content.
func (h *ContentHandler) List(c echo.Context) error {
	blocks, err := h.Content.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load content"})
	}
	items := make([]contentOut, 0, len(blocks))
	for _, b := range blocks {
		items = append(items, toContentOut(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// Get handles GET /v1/content/:key.
func (h *ContentHandler) Get(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "content key is required"})
	}
	block, err := h.Content.GetByKey(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "content not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load content"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toContentOut(block)})
}

// Upsert handles PUT /v1/content/:key (admin).
func (h *ContentHandler) Upsert(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "content key is required"})
	}
	var body struct {
		Value       string `json:"value"`
		ContentType string `json:"content_type"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if body.Value == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "value is required"})
	}
	switch body.ContentType {
	case "":
		body.ContentType = "text"
	case "text", "html":
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "content_type must be text or html"})
	}
	if err := h.Content.Upsert(c.Request().Context(), key, body.Value, body.ContentType); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save content"})
	}
	block, err := h.Content.GetByKey(c.Request().Context(), key)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reload content"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toContentOut(block)})
}
