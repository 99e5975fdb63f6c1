package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatwell/seatwell-api/internal/storage"
)

// maxUploadBytes caps game artwork uploads at 5 MiB.
const maxUploadBytes = 5 << 20

// UploadHandler stores game artwork and returns its public URL.
type UploadHandler struct {
	Store *storage.LocalStore
}

func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	if store == nil {
		panic("nil store passed to NewUploadHandler")
	}
	return &UploadHandler{Store: store}
}

// Upload handles POST /v1/uploads (admin) with a multipart "file"
// field.  The returned URL goes into a game's image_url.
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file field is required"})
	}
	if fh.Size > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "file exceeds 5MB limit"})
	}
	if !storage.IsImage(fh.Filename) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported image type"})
	}
	url, err := h.Store.SaveImage(fh)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store file"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"url": url})
}
