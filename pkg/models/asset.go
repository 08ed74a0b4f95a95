package models

// RemoteFile represents a file entry returned by the Drive folder listing
type RemoteFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type,omitempty"`
}

// ResolvedAsset carries the delivery URLs derived from a RemoteFile.
// The URLs are computed once when the file index is built and never change
// for the lifetime of the process.
type ResolvedAsset struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mime_type,omitempty"`
	ViewURL      string `json:"view_url"`      // in-page preview
	DownloadURL  string `json:"download_url"`  // explicit save
	ThumbnailURL string `json:"thumbnail_url"` // compact previews
}
