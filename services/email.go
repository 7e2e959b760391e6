package services

import (
	"fmt"
	"log"

	"helio_platform_go/config"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// BuildQueryNotificationEmail builds the admin notification for a newly
// submitted query entity (contact query, feedback, support request, issue)
func BuildQueryNotificationEmail(toEmail, toName, queryKind, queryID, summary string) *Email {
	subject := fmt.Sprintf("New %s received", queryKind)
	text := fmt.Sprintf(
		"Hi %s,\n\nA new %s was submitted.\n\nID: %s\n%s\n\nOpen the admin dashboard to triage it.\n",
		toName, queryKind, queryID, summary,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>A new %s was submitted.</p><p><strong>ID:</strong> %s<br>%s</p><p>Open the admin dashboard to triage it.</p>",
		toName, queryKind, queryID, summary,
	)

	return &Email{
		To:       []string{toEmail},
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	}
}

// SendEmail sends an email using the Resend API. In test mode the email is
// logged instead of sent.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode || cfg.ResendAPIKey == "" {
		log.Printf("[EMAIL TEST MODE] To: %v | Subject: %s", email.To, email.Subject)
		return nil
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w (%w)", err, ErrExternalService)
	}

	return nil
}

// SendEmailAsync sends an email in a goroutine. Failures are logged, never
// surfaced: notification emails must not block or fail the triggering request.
func SendEmailAsync(cfg *config.Config, email *Email) {
	go func() {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Failed to send email to %v: %v", email.To, err)
		}
	}()
}
