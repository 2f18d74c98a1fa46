package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clinicrecords/internal/codec"
	"clinicrecords/internal/http/middleware"
	"clinicrecords/internal/repository"
	"clinicrecords/internal/service"
	"clinicrecords/internal/validate"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response.
// message must be safe to show to clients; internal details go through writeFailure.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeFailure maps a store or service error onto the error envelope.
// Validation failures echo the offending field; server-side failures only
// reach the request log.
func writeFailure(c *fiber.Ctx, err error) error {
	var (
		verr *validate.ValidationError
		perr *codec.ParseError
		ioe  *repository.IOError
	)
	switch {
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", verr.Error())
	case errors.Is(err, repository.ErrDuplicateID):
		return writeError(c, fiber.StatusConflict, "DUPLICATE_ID", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrSnapshotNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "snapshot not found")
	case errors.Is(err, service.ErrInsufficientStock):
		return writeError(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", err.Error())
	case errors.Is(err, service.ErrInvalidRange):
		return writeError(c, fiber.StatusBadRequest, "INVALID_RANGE", err.Error())
	case errors.Is(err, service.ErrBackupDisabled):
		return writeError(c, fiber.StatusServiceUnavailable, "BACKUP_DISABLED", "backup storage is not configured")
	}

	c.Locals(middleware.ErrorLocalKey, err)
	switch {
	case errors.As(err, &perr):
		return writeError(c, fiber.StatusInternalServerError, "CORRUPT_RECORD", "stored data could not be read")
	case errors.As(err, &ioe):
		return writeError(c, fiber.StatusInternalServerError, "STORAGE_ERROR", "storage failure")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
