package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"widgion.com/billing/internal/logger"
)

type SaveCustomerRequest struct {
	Email           string `json:"email"`
	Company         string `json:"company"`
	PaymentMethodID string `json:"paymentMethodId"`
}

type SaveCustomerResponse struct {
	Success bool `json:"success"`
}

// SaveCustomer attaches a confirmed, tokenized payment method to the
// customer resolved for the submitted email and marks it the default for
// future invoices. Raw card data never reaches this handler; the browser
// sends only the opaque payment method id produced by Stripe.js.
func (s *Server) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	var req SaveCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := req.validate(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := s.Billing.AttachPaymentMethod(r.Context(), req.Email, req.Company, req.PaymentMethodID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	logger.Info("Customer payment method saved", map[string]interface{}{
		"customer_id":    customer.ID,
		"customer_email": req.Email,
	})

	writeJSON(w, http.StatusOK, SaveCustomerResponse{Success: true})
}

func (req SaveCustomerRequest) validate() error {
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	if req.PaymentMethodID == "" {
		return fmt.Errorf("paymentMethodId is required")
	}
	return nil
}
