package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendGridMailer_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/v3/mail/send" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Unexpected authorization header: %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Subject string `json:"subject"`
			From    struct {
				Email string `json:"email"`
			} `json:"from"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("Failed to decode mail payload: %v", err)
		}
		if payload.Subject != "File Download Alert: resume.pdf" {
			t.Errorf("Unexpected subject: %q", payload.Subject)
		}
		if payload.From.Email != "noreply@portfolio.com" {
			t.Errorf("Unexpected sender: %q", payload.From.Email)
		}

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	mailer := NewSendGridMailer("test-key")
	mailer.host = server.URL

	err := mailer.Send(&Message{
		To:        "owner@example.com",
		From:      "noreply@portfolio.com",
		Subject:   "File Download Alert: resume.pdf",
		PlainText: "plain",
		HTML:      "<p>html</p>",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
}

func TestSendGridMailer_Send_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors": [{"message": "bad key"}]}`))
	}))
	defer server.Close()

	mailer := NewSendGridMailer("bad-key")
	mailer.host = server.URL

	err := mailer.Send(&Message{To: "owner@example.com", From: "noreply@portfolio.com", Subject: "x", PlainText: "p", HTML: "h"})
	if err == nil {
		t.Fatal("Expected an error for a 401 response")
	}
}
