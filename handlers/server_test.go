package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"widgion.com/billing/internal/testutil"
	"widgion.com/billing/internal/validate"
)

func TestNewHTTPServer(t *testing.T) {
	fake := testutil.NewStripeServer()
	defer fake.Close()

	server := newTestServer(fake)

	if server.Router == nil {
		t.Errorf("Expected router to be initialized")
	}

	if server.Billing == nil {
		t.Errorf("Expected billing service to be initialized")
	}
}

func TestServer_HealthEndpoint(t *testing.T) {
	fake := testutil.NewStripeServer()
	defer fake.Close()

	server := newTestServer(fake)
	server.Version = "1.2.3"

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got '%s'", response.Status)
	}

	if response.Version != "1.2.3" {
		t.Errorf("Expected version '1.2.3', got '%s'", response.Version)
	}
}

func TestServer_PaymentPage(t *testing.T) {
	fake := testutil.NewStripeServer()
	defer fake.Close()

	server := newTestServer(fake)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	body := w.Body.String()

	if !strings.Contains(body, "pk_test_123") {
		t.Errorf("Expected page to carry the publishable key")
	}

	if !strings.Contains(body, "payment-form") {
		t.Errorf("Expected page to contain the payment form")
	}

	if !strings.Contains(body, "data-email-pattern=") {
		t.Errorf("Expected page to carry the email validation pattern")
	}

	if !strings.Contains(body, validate.EmailErrorMessage) {
		t.Errorf("Expected page to carry the email error message")
	}
}

func TestServer_StaticAssets(t *testing.T) {
	fake := testutil.NewStripeServer()
	defer fake.Close()

	server := newTestServer(fake)

	req := httptest.NewRequest(http.MethodGet, "/static/app.js", nil)
	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	if !strings.Contains(w.Body.String(), "confirmCardSetup") {
		t.Errorf("Expected app.js to drive card confirmation")
	}
}

func TestServer_RateLimit(t *testing.T) {
	fake := testutil.NewStripeServer()
	defer fake.Close()

	server := newTestServer(fake)

	var lastCode int
	for i := 0; i < rateLimitRequests+1; i++ {
		w := postJSON(t, server, "/api/create-setup-intent", SetupIntentRequest{})
		lastCode = w.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Errorf("Expected status %d after exhausting the window, got %d", http.StatusTooManyRequests, lastCode)
	}
}
