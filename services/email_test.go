package services

import (
	"testing"

	"helio_platform_go/config"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryNotificationEmail(t *testing.T) {
	email := BuildQueryNotificationEmail("admin@test.com", "Admin", "support request", "abc-123", "Subject: Gateway will not pair")

	assert.Equal(t, []string{"admin@test.com"}, email.To)
	assert.Equal(t, "New support request received", email.Subject)
	assert.Contains(t, email.TextBody, "abc-123")
	assert.Contains(t, email.TextBody, "Gateway will not pair")
	assert.Contains(t, email.HTMLBody, "abc-123")
}

func TestSendEmailTestMode(t *testing.T) {
	cfg := &config.Config{EmailTestMode: true}
	email := BuildQueryNotificationEmail("admin@test.com", "Admin", "feedback", "id-1", "summary")

	// Test mode logs instead of sending; no API key is needed
	assert.NoError(t, SendEmail(cfg, email))
}

func TestSendEmailWithoutAPIKeyFallsBackToLogging(t *testing.T) {
	cfg := &config.Config{}
	email := BuildQueryNotificationEmail("admin@test.com", "Admin", "contact query", "id-2", "summary")

	assert.NoError(t, SendEmail(cfg, email))
}
