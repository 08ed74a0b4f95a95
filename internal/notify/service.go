package notify

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Service composes and dispatches download notifications. It never returns
// an error: every failure is folded into the Delivery result.
type Service struct {
	mailer    Mailer
	recipient string
	sender    string
}

// NewService creates a new notify service. A nil mailer means no email
// credential is configured; notifications are then recorded as not tracked.
func NewService(mailer Mailer, recipient, sender string) *Service {
	return &Service{
		mailer:    mailer,
		recipient: recipient,
		sender:    sender,
	}
}

// Notify dispatches an email about a download event
func (s *Service) Notify(req TrackRequest, visitor Visitor) Delivery {
	if s.mailer == nil {
		log.Warn().Msg("Email credential not configured, download not tracked")
		return Delivery{Delivered: false, Reason: "Tracking not configured"}
	}

	msg := &Message{
		To:      s.recipient,
		From:    s.sender,
		Subject: fmt.Sprintf("File Download Alert: %s", req.FileName),
	}
	msg.PlainText, msg.HTML = composeBody(req, visitor)

	if err := s.mailer.Send(msg); err != nil {
		log.Error().Err(err).Str("file", req.FileName).Msg("Failed to send download notification")
		return Delivery{Delivered: false, Reason: "Email service error"}
	}

	log.Info().Str("file", req.FileName).Str("section", req.Section).Msg("Download tracked")
	return Delivery{Delivered: true}
}

// VisitorFromRequest extracts visitor metadata from the request headers
func VisitorFromRequest(r *http.Request) Visitor {
	userAgent := r.Header.Get("User-Agent")
	if userAgent == "" {
		userAgent = "Unknown"
	}

	referrer := r.Header.Get("Referer")
	if referrer == "" {
		referrer = "Direct"
	}

	return Visitor{
		IP:        visitorIP(r),
		UserAgent: userAgent,
		Referrer:  referrer,
		Browser:   browserFrom(userAgent),
		OS:        osFrom(userAgent),
		Timestamp: time.Now().UTC(),
	}
}

// visitorIP returns the first forwarded address, the Client-IP header, or
// "Unknown". The identity is informational only, so no effort is made to
// validate it against spoofing.
func visitorIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if clientIP := r.Header.Get("Client-IP"); clientIP != "" {
		return clientIP
	}
	return "Unknown"
}

// browserFrom derives a coarse browser label; first match wins
func browserFrom(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Chrome"):
		return "Chrome"
	case strings.Contains(userAgent, "Firefox"):
		return "Firefox"
	case strings.Contains(userAgent, "Safari"):
		return "Safari"
	case strings.Contains(userAgent, "Edge"):
		return "Edge"
	default:
		return "Unknown"
	}
}

// osFrom derives a coarse operating system label; first match wins
func osFrom(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Windows"):
		return "Windows"
	case strings.Contains(userAgent, "Mac"):
		return "macOS"
	case strings.Contains(userAgent, "Linux"):
		return "Linux"
	case strings.Contains(userAgent, "Android"):
		return "Android"
	case strings.Contains(userAgent, "iOS"):
		return "iOS"
	default:
		return "Unknown"
	}
}

const htmlBodyFormat = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2>Portfolio File Downloaded</h2>
  <h3>File Information</h3>
  <p><strong>File:</strong> %s</p>
  <p><strong>Section:</strong> %s</p>
  <h3>Visitor Information</h3>
  <p><strong>IP Address:</strong> %s</p>
  <p><strong>Browser:</strong> %s</p>
  <p><strong>Operating System:</strong> %s</p>
  <p><strong>Timestamp:</strong> %s</p>
  <p><strong>Referrer:</strong> %s</p>
  <hr>
  <p style="font-size: 0.85rem; color: #999;">Full User Agent: <code>%s</code></p>
</div>`

const plainBodyFormat = `Portfolio file downloaded.

File: %s
Section: %s

IP address: %s
Browser: %s
Operating system: %s
Timestamp: %s
Referrer: %s

Full user agent: %s`

// composeBody renders the plain-text and HTML notification bodies
func composeBody(req TrackRequest, visitor Visitor) (string, string) {
	timestamp := visitor.Timestamp.Format(time.RFC3339)

	plain := fmt.Sprintf(plainBodyFormat,
		req.FileName, req.Section,
		visitor.IP, visitor.Browser, visitor.OS, timestamp, visitor.Referrer,
		visitor.UserAgent)

	html := fmt.Sprintf(htmlBodyFormat,
		req.FileName, req.Section,
		visitor.IP, visitor.Browser, visitor.OS, timestamp, visitor.Referrer,
		visitor.UserAgent)

	return plain, html
}
