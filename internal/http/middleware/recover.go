package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Recovery turns a panic in a downstream handler into a 500 handled by the app's ErrorHandler.
func Recovery(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Locals(RequestIDLocalKey).(string)
				log.Error().
					Str("request_id", rid).
					Str("panic", fmt.Sprint(r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				err = fiber.ErrInternalServerError
			}
		}()
		return c.Next()
	}
}
