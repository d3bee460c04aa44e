package config

import "testing"

// Settings have to be visible when set after package init, the way godotenv
// populates them in main.
func TestMailConfiguredReadsEnvironmentAtCallTime(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_FROM", "")
	if MailConfigured() {
		t.Fatal("expected unconfigured mailer without SMTP env")
	}

	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "Marketplace <no-reply@example.com>")
	if !MailConfigured() {
		t.Fatal("SMTP_HOST/SMTP_FROM set in env, but MailConfigured() = false")
	}
}

func TestSendMailWithoutConfiguration(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_FROM", "")

	// No recipients is a no-op regardless of configuration.
	if err := SendMail(nil, "subject", "<p>body</p>"); err != nil {
		t.Fatalf("expected nil for empty recipients, got %v", err)
	}

	if err := SendMail([]string{"buyer@example.com"}, "subject", "<p>body</p>"); err == nil {
		t.Fatal("expected error when smtp is not configured")
	}
}
