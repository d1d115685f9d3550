package middleware

import (
	"strconv"
	"time"

	"labor-intel/internal/pkg/metrics"

	"github.com/gofiber/fiber/v3"
)

// Metrics records request counts and latency per route template so that path
// parameters do not explode label cardinality.
func Metrics() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		method := c.Method()

		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}
