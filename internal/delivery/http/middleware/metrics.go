package middleware

import (
	"strconv"
	"time"

	"github.com/epi-dashboard/internal/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

// Metrics - счётчики и латентность запросов в Prometheus.
// Маршрут берётся из шаблона роутера, чтобы не плодить label'ы на неизвестных путях.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "/" && r.Path != "" {
			route = r.Path
		}

		m.RecordHTTPRequest(route, c.Method(), strconv.Itoa(status), time.Since(start).Seconds())
		return err
	}
}
