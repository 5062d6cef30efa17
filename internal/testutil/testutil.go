// Package testutil provides a fake Stripe API for tests. It speaks just
// enough of the v1 wire protocol for the stripe-go client: customer
// list/create/update, setup intent create, and payment method attach.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeCustomer is the fake server's record of a customer.
type StripeCustomer struct {
	ID                   string
	Email                string
	Name                 string
	Metadata             map[string]string
	DefaultPaymentMethod string
}

// StripeServer is an in-memory stand-in for the Stripe API. Fail flags
// force the next matching call to return a provider error.
type StripeServer struct {
	mu sync.Mutex

	customers      map[string]*StripeCustomer
	customerOrder  []string
	paymentMethods map[string]bool
	attachments    map[string]string // payment method id -> customer id

	nextCustomer int
	nextIntent   int

	FailList        bool
	FailCreate      bool
	FailSetupIntent bool
	FailAttach      bool
	FailUpdate      bool

	server *httptest.Server
}

func NewStripeServer() *StripeServer {
	s := &StripeServer{
		customers:      make(map[string]*StripeCustomer),
		paymentMethods: make(map[string]bool),
		attachments:    make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/customers", s.listCustomers)
	mux.HandleFunc("POST /v1/customers", s.createCustomer)
	mux.HandleFunc("POST /v1/customers/{id}", s.updateCustomer)
	mux.HandleFunc("POST /v1/setup_intents", s.createSetupIntent)
	mux.HandleFunc("POST /v1/payment_methods/{id}/attach", s.attachPaymentMethod)

	s.server = httptest.NewServer(mux)
	return s
}

func (s *StripeServer) Close() {
	s.server.Close()
}

// Client returns a stripe-go client pointed at the fake server.
func (s *StripeServer) Client() *client.API {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(s.server.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	})

	api := &client.API{}
	api.Init("sk_test_fake", &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})

	return api
}

// SeedCustomer registers an existing customer and returns its id.
func (s *StripeServer) SeedCustomer(email, name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addCustomer(email, name, map[string]string{"company": name}).ID
}

// SeedPaymentMethod registers a tokenized payment method id the fake will
// accept for attaching.
func (s *StripeServer) SeedPaymentMethod(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paymentMethods[id] = true
}

// CustomerByEmail returns a copy of the first stored customer with the
// given email, or nil.
func (s *StripeServer) CustomerByEmail(email string) *StripeCustomer {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.customerOrder {
		if s.customers[id].Email == email {
			copied := *s.customers[id]
			return &copied
		}
	}
	return nil
}

// CustomerCount returns how many customers the fake holds.
func (s *StripeServer) CustomerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.customerOrder)
}

// AttachedCustomer returns the customer id a payment method is attached
// to, or the empty string.
func (s *StripeServer) AttachedCustomer(paymentMethodID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attachments[paymentMethodID]
}

func (s *StripeServer) addCustomer(email, name string, metadata map[string]string) *StripeCustomer {
	s.nextCustomer++
	customer := &StripeCustomer{
		ID:       fmt.Sprintf("cus_%03d", s.nextCustomer),
		Email:    email,
		Name:     name,
		Metadata: metadata,
	}
	s.customers[customer.ID] = customer
	s.customerOrder = append(s.customerOrder, customer.ID)

	return customer
}

func (s *StripeServer) listCustomers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailList {
		writeStripeError(w, http.StatusInternalServerError, "api_error", "", "", "Customer listing is unavailable.")
		return
	}

	email := r.URL.Query().Get("email")

	var data []map[string]interface{}
	for _, id := range s.customerOrder {
		customer := s.customers[id]
		if email != "" && customer.Email != email {
			continue
		}
		data = append(data, customerJSON(customer))
		break // limit=1 is the only shape this system requests
	}
	if data == nil {
		data = []map[string]interface{}{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"object":   "list",
		"url":      "/v1/customers",
		"has_more": false,
		"data":     data,
	})
}

func (s *StripeServer) createCustomer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCreate {
		writeStripeError(w, http.StatusInternalServerError, "api_error", "", "", "Customer creation failed.")
		return
	}

	if err := r.ParseForm(); err != nil {
		writeStripeError(w, http.StatusBadRequest, "invalid_request_error", "", "", "Malformed form body.")
		return
	}

	metadata := map[string]string{}
	if company := r.PostForm.Get("metadata[company]"); company != "" {
		metadata["company"] = company
	}

	customer := s.addCustomer(r.PostForm.Get("email"), r.PostForm.Get("name"), metadata)
	writeJSON(w, http.StatusOK, customerJSON(customer))
}

func (s *StripeServer) updateCustomer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailUpdate {
		writeStripeError(w, http.StatusInternalServerError, "api_error", "", "", "Customer update failed.")
		return
	}

	customer, ok := s.customers[r.PathValue("id")]
	if !ok {
		writeStripeError(w, http.StatusNotFound, "invalid_request_error", "resource_missing", "customer",
			fmt.Sprintf("No such customer: '%s'", r.PathValue("id")))
		return
	}

	if err := r.ParseForm(); err != nil {
		writeStripeError(w, http.StatusBadRequest, "invalid_request_error", "", "", "Malformed form body.")
		return
	}

	if pm := r.PostForm.Get("invoice_settings[default_payment_method]"); pm != "" {
		customer.DefaultPaymentMethod = pm
	}

	writeJSON(w, http.StatusOK, customerJSON(customer))
}

func (s *StripeServer) createSetupIntent(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSetupIntent {
		writeStripeError(w, http.StatusInternalServerError, "api_error", "", "", "Setup intent creation failed.")
		return
	}

	if err := r.ParseForm(); err != nil {
		writeStripeError(w, http.StatusBadRequest, "invalid_request_error", "", "", "Malformed form body.")
		return
	}

	customerID := r.PostForm.Get("customer")
	if customerID != "" {
		if _, ok := s.customers[customerID]; !ok {
			writeStripeError(w, http.StatusNotFound, "invalid_request_error", "resource_missing", "customer",
				fmt.Sprintf("No such customer: '%s'", customerID))
			return
		}
	}

	s.nextIntent++
	id := fmt.Sprintf("seti_%03d", s.nextIntent)

	intent := map[string]interface{}{
		"id":            id,
		"object":        "setup_intent",
		"client_secret": fmt.Sprintf("%s_secret_test", id),
		"status":        "requires_payment_method",
		"usage":         r.PostForm.Get("usage"),
	}
	if customerID != "" {
		intent["customer"] = customerID
	}

	writeJSON(w, http.StatusOK, intent)
}

func (s *StripeServer) attachPaymentMethod(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paymentMethodID := r.PathValue("id")

	if s.FailAttach || !s.paymentMethods[paymentMethodID] {
		writeStripeError(w, http.StatusNotFound, "invalid_request_error", "resource_missing", "payment_method",
			fmt.Sprintf("No such PaymentMethod: '%s'", paymentMethodID))
		return
	}

	if err := r.ParseForm(); err != nil {
		writeStripeError(w, http.StatusBadRequest, "invalid_request_error", "", "", "Malformed form body.")
		return
	}

	customerID := r.PostForm.Get("customer")
	if _, ok := s.customers[customerID]; !ok {
		writeStripeError(w, http.StatusNotFound, "invalid_request_error", "resource_missing", "customer",
			fmt.Sprintf("No such customer: '%s'", customerID))
		return
	}

	// attaching an already-attached method to the same customer is a no-op
	s.attachments[paymentMethodID] = customerID

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       paymentMethodID,
		"object":   "payment_method",
		"type":     "card",
		"customer": customerID,
	})
}

func customerJSON(c *StripeCustomer) map[string]interface{} {
	out := map[string]interface{}{
		"id":       c.ID,
		"object":   "customer",
		"email":    c.Email,
		"name":     c.Name,
		"metadata": c.Metadata,
	}
	if c.DefaultPaymentMethod != "" {
		out["invoice_settings"] = map[string]interface{}{
			"default_payment_method": c.DefaultPaymentMethod,
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeStripeError(w http.ResponseWriter, status int, errType, code, param, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"type":    errType,
			"code":    code,
			"param":   param,
			"message": message,
		},
	})
}
