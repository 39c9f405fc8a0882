package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts failed Redis operations across caching and rate limiting.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lingopal_redis_errors_total",
	Help: "Total number of Redis operation failures",
}, []string{"operation"})

// FriendRequestsSent counts accepted POST friend-request operations by outcome.
var FriendRequestsSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lingopal_friend_requests_total",
	Help: "Friend request operations by outcome",
}, []string{"outcome"})

// InitMetrics creates the Prometheus middleware instance for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the HTTP middleware collecting per-route
// request counts and latency histograms.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
