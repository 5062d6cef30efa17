package handlers

import (
	"net/http"

	"widgion.com/billing/internal/logger"
	"widgion.com/billing/internal/validate"
	"widgion.com/billing/web"
)

// PaymentPage serves the hosted card-capture form. The publishable key and
// the validation rules are injected at render time so the browser uses the
// same definitions the tests assert against.
func (s *Server) PaymentPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := web.PageData{
		PublishableKey: s.Config.StripePublishableKey,
		EmailPattern:   validate.BusinessEmailPattern,
		EmailError:     validate.EmailErrorMessage,
		CompanyError:   validate.CompanyErrorMessage,
	}

	if err := web.RenderPage(w, data); err != nil {
		logger.Error("Failed to render payment page", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
