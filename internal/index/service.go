package index

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"portfolio-backend/pkg/models"
)

// URL templates for delivering Drive content. The thumbnail host serves any
// file directly, the uc endpoint forces a download, and the preview path
// embeds a PDF viewer. PDFs cannot be embedded cross-origin from the
// thumbnail host, so their thumbnails are routed through the local proxy.
const (
	thumbnailURLFormat = "https://lh3.googleusercontent.com/d/%s"
	downloadURLFormat  = "https://drive.google.com/uc?export=download&id=%s"
	pdfPreviewFormat   = "https://drive.google.com/file/d/%s/preview"
	pdfProxyFormat     = "/proxy-pdf?id=%s"
)

// Service owns the remote file index. The index is built exactly once per
// process from a single folder listing and is read-only afterwards; when the
// listing fails or Drive is not configured, it stays empty for the lifetime
// of the process and every resolution misses.
type Service struct {
	lister   Lister
	folderID string
	apiKey   string

	mu      sync.RWMutex
	assets  map[string]models.ResolvedAsset
	loading bool
	err     error
}

// NewService creates a new index service. The index is empty and reported as
// loading until Build has run.
func NewService(lister Lister, folderID, apiKey string) *Service {
	return &Service{
		lister:   lister,
		folderID: folderID,
		apiKey:   apiKey,
		assets:   map[string]models.ResolvedAsset{},
		loading:  true,
	}
}

// Build fetches the folder listing and populates the index. It is a one-shot
// operation with no retry: any failure leaves the index empty and records the
// error, and consumers fall back to locally bundled assets.
func (s *Service) Build() {
	defer s.settle()

	if s.folderID == "" || s.apiKey == "" {
		log.Warn().Msg("Drive API key or folder ID missing, switching to local mode")
		return
	}

	files, err := s.lister.ListFolder(s.folderID, s.apiKey)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch Drive files")
		s.mu.Lock()
		s.err = fmt.Errorf("failed to fetch Drive files: %w", err)
		s.mu.Unlock()
		return
	}

	assets := make(map[string]models.ResolvedAsset, 2*len(files))
	for _, file := range files {
		asset := deriveAsset(file)
		// Both casings map to the same asset; last entry wins on collision.
		assets[file.Name] = asset
		assets[strings.ToLower(file.Name)] = asset
	}

	s.mu.Lock()
	s.assets = assets
	s.mu.Unlock()

	log.Info().Int("count", len(files)).Msg("Drive file index built")
}

func (s *Service) settle() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// deriveAsset computes the delivery URLs for a remote file
func deriveAsset(file models.RemoteFile) models.ResolvedAsset {
	asset := models.ResolvedAsset{
		ID:           file.ID,
		Name:         file.Name,
		MimeType:     file.MimeType,
		ThumbnailURL: fmt.Sprintf(thumbnailURLFormat, file.ID),
		DownloadURL:  fmt.Sprintf(downloadURLFormat, file.ID),
	}

	switch {
	case file.MimeType == "application/pdf":
		asset.ViewURL = fmt.Sprintf(pdfPreviewFormat, file.ID)
		asset.ThumbnailURL = fmt.Sprintf(pdfProxyFormat, file.ID)
	case strings.HasPrefix(file.MimeType, "image/"):
		asset.ViewURL = asset.ThumbnailURL
	default:
		asset.ViewURL = asset.DownloadURL
	}

	return asset
}

// Resolve finds the best-matching asset for a requested logical file name.
// A miss is a normal outcome, not an error; callers render a placeholder.
func (s *Service) Resolve(name string) (models.ResolvedAsset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, _, ok := lookup(s.assets, name)
	return asset, ok
}

// Assets returns every distinct asset in the index, sorted by name
func (s *Service) Assets() []models.ResolvedAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.assets))
	assets := make([]models.ResolvedAsset, 0, len(s.assets))
	for _, asset := range s.assets {
		if seen[asset.ID] {
			continue
		}
		seen[asset.ID] = true
		assets = append(assets, asset)
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
	return assets
}

// Loading reports whether the one-shot build is still in flight
func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the build error, if any
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
