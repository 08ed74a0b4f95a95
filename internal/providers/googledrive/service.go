package googledrive

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"portfolio-backend/pkg/models"
)

// The portfolio folder is shared publicly, so listing works with an API key
// alone; no OAuth flow is involved. Direct downloads go through the uc
// endpoint, which rejects some non-browser user agents.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Service provides read-only access to the public portfolio Drive folder
type Service struct {
	httpClient  *http.Client
	baseURL     string
	downloadURL string
}

// NewService creates a new Google Drive service
func NewService() *Service {
	return &Service{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     "https://www.googleapis.com/drive/v3",
		downloadURL: "https://drive.google.com/uc",
	}
}

// ListFolder lists all files in a Drive folder using an API key.
// Only id, name and mimeType are requested; that is all the file index needs.
func (s *Service) ListFolder(folderID, apiKey string) ([]models.RemoteFile, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("'%s' in parents", folderID))
	params.Set("key", apiKey)
	params.Set("fields", "files(id,name,mimeType)")

	apiURL := fmt.Sprintf("%s/files?%s", s.baseURL, params.Encode())

	req, err := http.NewRequest("GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, s.handleAPIError(resp)
	}

	var driveResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&driveResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	files := make([]models.RemoteFile, 0, len(driveResp.Files))
	for _, file := range driveResp.Files {
		files = append(files, models.RemoteFile{
			ID:       file.ID,
			Name:     file.Name,
			MimeType: file.MimeType,
		})
	}

	return files, nil
}

// FetchFile retrieves the binary content of a file through the direct
// download endpoint. The caller owns the returned stream and must close it.
func (s *Service) FetchFile(id string) (io.ReadCloser, error) {
	params := url.Values{}
	params.Set("export", "download")
	params.Set("id", id)

	req, err := http.NewRequest("GET", s.downloadURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute download request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch file: %s", resp.Status)
	}

	return resp.Body, nil
}

// handleAPIError processes Google Drive API error responses
func (s *Service) handleAPIError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var errorResponse struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &errorResponse); err != nil {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return fmt.Errorf("google Drive API error (%d): %s - %s",
		resp.StatusCode, errorResponse.Error.Status, errorResponse.Error.Message)
}
