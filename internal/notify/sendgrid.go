package notify

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridHost = "https://api.sendgrid.com"

// SendGridMailer dispatches notification emails through the SendGrid v3 API
type SendGridMailer struct {
	apiKey string
	host   string
}

// NewSendGridMailer creates a mailer using the given API key
func NewSendGridMailer(apiKey string) *SendGridMailer {
	return &SendGridMailer{
		apiKey: apiKey,
		host:   sendGridHost,
	}
}

// Send dispatches a single notification email
func (m *SendGridMailer) Send(msg *Message) error {
	from := mail.NewEmail("", msg.From)
	to := mail.NewEmail("", msg.To)
	email := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)

	request := sendgrid.GetRequest(m.apiKey, "/v3/mail/send", m.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(email)

	response, err := sendgrid.API(request)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendGrid API error (%d): %s", response.StatusCode, response.Body)
	}

	return nil
}
