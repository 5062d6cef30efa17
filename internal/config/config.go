package config

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	Port string

	StripeSecretKey      string
	StripePublishableKey string

	SentryDSN      string
	AllowedOrigins []string
}

func New() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY environment variable is required")
	}

	publishableKey := os.Getenv("STRIPE_PUBLISHABLE_KEY")
	if publishableKey == "" {
		return nil, errors.New("STRIPE_PUBLISHABLE_KEY environment variable is required")
	}

	origins := []string{"*"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = nil
		for _, origin := range strings.Split(v, ",") {
			origins = append(origins, strings.TrimSpace(origin))
		}
	}

	return &Config{
		Port:                 port,
		StripeSecretKey:      secretKey,
		StripePublishableKey: publishableKey,
		SentryDSN:            os.Getenv("SENTRY_DSN"),
		AllowedOrigins:       origins,
	}, nil
}
