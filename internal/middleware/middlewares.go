package middleware

import (
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups every middleware component used by the HTTP server,
// built once from the application container.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and
	// the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer installs the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing wires New Relic into Echo; a no-op without a license key.
	Tracing *TracingMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
