package notify

import "time"

// TrackRequest represents the request body for download tracking
type TrackRequest struct {
	FileName string `json:"fileName"`
	Section  string `json:"section"`
}

// TrackResponse is always returned with HTTP 200; a failed notification must
// never surface as an error to the visitor who triggered the download.
type TrackResponse struct {
	Tracked   bool   `json:"tracked"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Visitor holds the metadata extracted from the download request
type Visitor struct {
	IP        string
	UserAgent string
	Referrer  string
	Browser   string
	OS        string
	Timestamp time.Time
}

// Delivery is the internal outcome of a notification attempt. The handler
// maps every Delivery to HTTP 200, which keeps the swallow-all behavior
// explicit instead of buried in error handling.
type Delivery struct {
	Delivered bool
	Reason    string
}

// Message is a notification email ready for dispatch
type Message struct {
	To        string
	From      string
	Subject   string
	PlainText string
	HTML      string
}
