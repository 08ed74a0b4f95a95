package notify

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for download tracking
type Handler struct {
	service *Service
}

// NewHandler creates a new notify handler
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers tracking routes with the Echo router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/track-download", h.TrackDownload)
}

// TrackDownload handles POST /track-download
// It always answers 200: tracking is best-effort and must never block or
// error the download the visitor actually cares about.
func (h *Handler) TrackDownload(c echo.Context) error {
	var req TrackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, TrackResponse{
			Tracked: false,
			Error:   err.Error(),
		})
	}

	visitor := VisitorFromRequest(c.Request())
	delivery := h.service.Notify(req, visitor)

	resp := TrackResponse{
		Tracked:   delivery.Delivered,
		Timestamp: visitor.Timestamp.Format(time.RFC3339),
	}
	if delivery.Delivered {
		resp.Message = "Download tracked successfully"
	} else {
		resp.Message = delivery.Reason
	}

	return c.JSON(http.StatusOK, resp)
}
