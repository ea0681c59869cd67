package metrics

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Middleware records request count and latency per route template. An error
// that no inner middleware has turned into a response is handed to the echo
// error handler first, so the recorded status is the one the client sees.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil && !c.Response().Committed {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			ObserveHTTP(c.Request().Method, path, c.Response().Status, time.Since(start))
			return err
		}
	}
}
