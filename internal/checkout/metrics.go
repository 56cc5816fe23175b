package checkout

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

var (
	sessionsCreatedCounter = metrics.GetOrCreateCounter(`checkout_sessions_total{result="created"}`)
	providerDuration       = metrics.GetOrCreateHistogram(`checkout_provider_duration_seconds`)
)

func failedCounter(kind ErrorKind) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`checkout_sessions_total{result="failed",kind=%q}`, kind))
}
