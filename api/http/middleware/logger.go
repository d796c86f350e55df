package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/artem13815/jobseeker/pkg/security/jwt"
)

const (
	RequestIDHeader = "X-Request-ID"
	LocalRequestID  = "requestId"
)

// RequestLogger reuses an incoming X-Request-ID or generates one, echoes it
// back and logs method, path, status and latency once the handler is done.
func RequestLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(RequestIDHeader, id)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		ev := logger.Info()
		if status >= fiber.StatusInternalServerError {
			ev = logger.Error().Err(err)
		}
		if uid, ok := c.Locals(jwt.LocalUserID).(string); ok && uid != "" {
			ev = ev.Str("user_id", uid)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", id).
			Msg("http request")
		return err
	}
}
