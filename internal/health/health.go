package health

import (
	"context"
	"net/http"
	"time"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/middleware"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/httpx"
)

// Checker is anything that can be pinged, e.g. the Redis client.
type Checker interface {
	Ping(ctx context.Context) error
}

type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type HealthHandler struct {
	checks  map[string]Checker
	timeout time.Duration
}

func NewHealthHandler(timeout time.Duration) *HealthHandler {
	return &HealthHandler{
		checks:  make(map[string]Checker),
		timeout: timeout,
	}
}

// Register adds a named dependency check. Call before serving.
func (hh *HealthHandler) Register(name string, c Checker) {
	hh.checks[name] = c
}

func (hh *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), hh.timeout)
	defer cancel()

	report := Report{Status: "ok"}
	status := http.StatusOK

	if len(hh.checks) > 0 {
		report.Checks = make(map[string]string, len(hh.checks))
	}
	for name, c := range hh.checks {
		if err := c.Ping(ctx); err != nil {
			middleware.GetLogger(r.Context()).Warn().Err(err).Str("check", name).Msg("Health check failed")
			report.Checks[name] = "down"
			report.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		report.Checks[name] = "up"
	}

	httpx.WriteJSON(w, status, report)
}
