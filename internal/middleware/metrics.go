package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name. Incremented by
// the cache package's client hook.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// LoginAttempts counts credential verification outcomes. The label only
// distinguishes success from failure, never the failure cause.
var LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_login_attempts_total",
	Help: "Total number of login attempts by outcome",
}, []string{"outcome"})

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics configures the Prometheus HTTP middleware for the service.
// Idempotent: the registry rejects duplicate collectors, so repeated server
// construction (tests) must share one instance.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware returns the request-instrumentation handler for prom.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
