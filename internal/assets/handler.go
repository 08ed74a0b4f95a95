package assets

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio-backend/internal/index"
	"portfolio-backend/pkg/models"
)

// Handler exposes the remote file index over HTTP
type Handler struct {
	index Index
}

// NewHandler creates a new assets handler
func NewHandler(index Index) *Handler {
	return &Handler{
		index: index,
	}
}

// RegisterRoutes registers asset routes with the Echo router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/files", h.ListFiles)
	e.GET("/files/resolve", h.ResolveFile)
	e.GET("/healthz", h.Health)
}

// ListFiles handles GET /files
// It returns the whole index as a read-only view, together with the loading
// flag so clients can tell an empty index from one still being built.
func (h *Handler) ListFiles(c echo.Context) error {
	resp := ListFilesResponse{
		Files:   h.index.Assets(),
		Loading: h.index.Loading(),
	}
	if err := h.index.Err(); err != nil {
		resp.Error = err.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// ResolveFile handles GET /files/resolve
// A miss is answered with 404 so presentation code can fall back to a
// locally bundled placeholder.
func (h *Handler) ResolveFile(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "name query parameter is required",
		})
	}

	asset, ok := h.index.Resolve(name)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "file not found",
		})
	}

	return c.JSON(http.StatusOK, ResolveResponse{
		ResolvedAsset: asset,
		Category:      index.Classify(asset.Name, asset.MimeType),
	})
}

// Health handles GET /healthz
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"loading": h.index.Loading(),
	})
}

// ListFilesResponse is the body of GET /files
type ListFilesResponse struct {
	Files   []models.ResolvedAsset `json:"files"`
	Loading bool                   `json:"loading"`
	Error   string                 `json:"error,omitempty"`
}

// ResolveResponse is the body of GET /files/resolve on a hit
type ResolveResponse struct {
	models.ResolvedAsset
	Category index.Category `json:"category"`
}
