package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"widgion.com/billing/handlers"
	"widgion.com/billing/internal/billing"
	"widgion.com/billing/internal/config"
	"widgion.com/billing/internal/logger"
)

var version = "dev"

func main() {
	if versionBytes, err := os.ReadFile("VERSION"); err == nil {
		version = strings.TrimSpace(string(versionBytes))
	}

	godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		logger.Error("Invalid configuration", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 1.0,
		})
		if err != nil {
			logger.Error("sentry.Init failed", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	service := billing.NewService(billing.NewClient(cfg.StripeSecretKey))

	server := handlers.NewHTTPServer(cfg, service)
	server.Version = version

	logger.Info("Payment setup service starting", map[string]interface{}{
		"version": version,
		"port":    cfg.Port,
	})

	if err := http.ListenAndServe(":"+cfg.Port, server.Router); err != nil {
		logger.Error("Server stopped", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
