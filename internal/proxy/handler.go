package proxy

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Handler proxies PDF downloads from Google Drive. Browsers cannot fetch the
// direct download URL themselves because of cross-origin restrictions, so the
// file is fetched server-side and re-served with permissive CORS headers.
type Handler struct {
	fetcher FileFetcher
}

// NewHandler creates a new proxy handler
func NewHandler(fetcher FileFetcher) *Handler {
	return &Handler{
		fetcher: fetcher,
	}
}

// RegisterRoutes registers proxy routes with the Echo router.
// Only GET is registered; other methods get Echo's 405 response.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/proxy-pdf", h.ProxyPDF)
}

// ProxyPDF handles GET /proxy-pdf
// The proxy has no fallback: when the upstream fetch fails the caller gets an
// explicit 500, because delivering this byte stream is its entire purpose.
func (h *Handler) ProxyPDF(c echo.Context) error {
	fileID := c.QueryParam("id")
	if fileID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "File ID is required",
		})
	}

	stream, err := h.fetcher.FetchFile(fileID)
	if err != nil {
		log.Error().Err(err).Str("file_id", fileID).Msg("Error proxying PDF")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "Failed to fetch PDF",
			"message": err.Error(),
		})
	}
	defer stream.Close()

	c.Response().Header().Set("Content-Type", "application/pdf")
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type")
	c.Response().Header().Set("Cache-Control", "public, max-age=86400") // Cache for 24 hours
	c.Response().WriteHeader(http.StatusOK)

	_, err = io.Copy(c.Response().Writer, stream)
	return err
}
