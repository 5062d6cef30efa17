package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/getsentry/sentry-go"

	"widgion.com/billing/internal/billing"
	"widgion.com/billing/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError is the single error boundary for the API handlers.
// Every billing failure leaves through here as the uniform {error} shape;
// unexpected errors additionally go to Sentry.
func writeServiceError(w http.ResponseWriter, err error) {
	switch billing.KindOf(err) {
	case billing.KindValidation:
		writeErrorResponse(w, http.StatusBadRequest, billing.Message(err))
	case billing.KindProvider:
		logger.Error("Stripe error", map[string]interface{}{
			"error": err.Error(),
		})
		writeErrorResponse(w, http.StatusInternalServerError, billing.Message(err))
	default:
		logger.Error("Unknown error", map[string]interface{}{
			"error": err.Error(),
		})
		sentry.CaptureException(err)
		writeErrorResponse(w, http.StatusInternalServerError, billing.GenericErrorMessage)
	}
}
