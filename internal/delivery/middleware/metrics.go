package middleware

import (
	"strconv"
	"time"

	"interest/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request latency labelled by server name and matched route.
func Metrics(server string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			// unmatched paths share one label to keep cardinality bounded
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.HTTPRequestDuration.
				WithLabelValues(server, c.Request().Method, route, strconv.Itoa(responseStatus(c, err))).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}
