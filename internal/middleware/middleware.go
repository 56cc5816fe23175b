package middleware

import (
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type Middlewares struct {
	Global          *Global
	ContextEnhancer *ContextEnhancer
	Tracing         *Tracing
	RateLimit       *RateLimit
}

func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application

	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	// A nil *redis.Client must not end up inside the interface.
	var limiter Limiter
	if s.Redis != nil {
		limiter = s.Redis
	}

	return &Middlewares{
		Global:          NewGlobal(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracing(nrApp),
		RateLimit:       NewRateLimit(limiter, s.Config.RateLimit),
	}
}
