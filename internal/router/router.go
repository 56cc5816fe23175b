package router

import (
	"net/http"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/checkout"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/health"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/middleware"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/server"
	"github.com/VictoriaMetrics/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Checkout *checkout.CheckoutHandler
	Health   *health.HealthHandler
}

func NewRouter(s *server.Server, h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	mw := middleware.NewMiddlewares(s)

	// Apply middleware in order
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(s.Config.Server.CORSAllowedOrigins))
	r.Use(mw.Tracing.NewRelicMiddleware())
	r.Use(mw.Tracing.EnhanceTracing)
	r.Use(mw.ContextEnhancer.EnhanceContext)
	r.Use(mw.Global.RequestLogger)

	r.With(mw.RateLimit.PerIP).Post("/create-checkout-session", h.Checkout.CreateCheckoutSession)

	if s.Config.Observability.HealthChecks.Enabled && h.Health != nil {
		r.Get("/healthz", h.Health.Health)
	}

	r.Get("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		metrics.WritePrometheus(w, true)
	})

	return r
}
