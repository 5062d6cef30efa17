package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"widgion.com/billing/internal/logger"
)

type SetupIntentRequest struct {
	Email   string `json:"email"`
	Company string `json:"company"`
}

type SetupIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateSetupIntent resolves the customer for the submitted email and
// issues an off-session SetupIntent bound to it, returning only the client
// secret the browser needs to confirm the card.
func (s *Server) CreateSetupIntent(w http.ResponseWriter, r *http.Request) {
	var req SetupIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := req.validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	clientSecret, err := s.Billing.IssueSetupIntent(r.Context(), req.Email, req.Company)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	logger.Info("Setup intent issued", map[string]interface{}{
		"customer_email": req.Email,
	})

	writeJSON(w, http.StatusOK, SetupIntentResponse{ClientSecret: clientSecret})
}

func (req SetupIntentRequest) validate() error {
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	// Email format and company rules are enforced in the browser; the
	// server only requires the lookup key to be present.
	return nil
}
