package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"widgion.com/billing/internal/billing"
	"widgion.com/billing/internal/config"
	"widgion.com/billing/internal/ratelimit"
	"widgion.com/billing/web"
)

// API abuse guard: the endpoints talk to Stripe on every call, so burst
// traffic from one address is cut off early.
const (
	rateLimitRequests = 30
	rateLimitWindow   = time.Minute
)

type Server struct {
	Router  chi.Router
	Billing *billing.Service
	Config  *config.Config
	Version string

	limiter *ratelimit.FixedWindowLimiter
}

func NewHTTPServer(cfg *config.Config, svc *billing.Service) *Server {
	s := &Server{
		Router:  chi.NewRouter(),
		Billing: svc,
		Config:  cfg,
		Version: "dev",
		limiter: ratelimit.New(rateLimitRequests, rateLimitWindow),
	}

	r := s.Router
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", s.Health)
	r.Get("/", s.PaymentPage)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.Assets)))

	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
		api.Use(s.rateLimit)

		api.Post("/create-setup-intent", s.CreateSetupIntent)
		api.Post("/save-customer", s.SaveCustomer)
	})

	return s
}
