package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Logger writes one structured line per request: request_id, method, path,
// status and latency in milliseconds. 5xx responses are logged at error level
// together with the internal error a handler left in locals.
func Logger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
			if ierr, ok := c.Locals(ErrorLocalKey).(error); ok {
				ev = ev.Err(ierr)
			} else if err != nil {
				ev = ev.Err(err)
			}
		}
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Msg("request")
		return err
	}
}
