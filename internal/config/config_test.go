package config

import (
	"testing"
)

func TestNew_MissingSecretKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_123")

	_, err := New()
	if err == nil {
		t.Fatalf("Expected error for missing STRIPE_SECRET_KEY, got nil")
	}
}

func TestNew_MissingPublishableKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "")

	_, err := New()
	if err == nil {
		t.Fatalf("Expected error for missing STRIPE_PUBLISHABLE_KEY, got nil")
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_123")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("SENTRY_DSN", "")

	cfg, err := New()
	if err != nil {
		t.Fatalf("Expected config, got error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port '8080', got '%s'", cfg.Port)
	}

	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("Expected default allowed origins ['*'], got %v", cfg.AllowedOrigins)
	}
}

func TestNew_AllowedOrigins(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_123")
	t.Setenv("ALLOWED_ORIGINS", "https://widgion.com, https://app.widgion.com")

	cfg, err := New()
	if err != nil {
		t.Fatalf("Expected config, got error: %v", err)
	}

	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("Expected 2 allowed origins, got %d", len(cfg.AllowedOrigins))
	}

	if cfg.AllowedOrigins[1] != "https://app.widgion.com" {
		t.Errorf("Expected trimmed origin 'https://app.widgion.com', got '%s'", cfg.AllowedOrigins[1])
	}
}
