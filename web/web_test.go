package web

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer

	err := RenderPage(&buf, PageData{
		PublishableKey: "pk_test_abc",
		EmailPattern:   `^[A-Za-z0-9._%+-]+@([A-Za-z0-9.-]+\.)+(com|org|net|edu|gov)$`,
		EmailError:     "Please enter a valid business email.",
		CompanyError:   "Company name is required.",
	})
	if err != nil {
		t.Fatalf("Expected page to render, got %v", err)
	}

	body := buf.String()

	for _, want := range []string{
		"pk_test_abc",
		"data-email-pattern=",
		"Please enter a valid business email.",
		"Company name is required.",
		"js.stripe.com/v3",
		"/static/app.js",
		"id=\"card-element\"",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected rendered page to contain %q", want)
		}
	}
}

func TestAssets_ControllerEmbedded(t *testing.T) {
	data, err := Assets.ReadFile("app.js")
	if err != nil {
		t.Fatalf("Expected embedded app.js, got %v", err)
	}

	js := string(data)

	// the controller must never post card data to our own API
	for _, want := range []string{
		"confirmCardSetup",
		"/api/create-setup-intent",
		"/api/save-customer",
		"paymentMethodId",
	} {
		if !strings.Contains(js, want) {
			t.Errorf("Expected controller to contain %q", want)
		}
	}

	if strings.Contains(js, "card_number") || strings.Contains(js, "cvc") {
		t.Errorf("Controller must not handle raw card fields")
	}
}
