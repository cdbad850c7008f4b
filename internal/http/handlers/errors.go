package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "meno/internal/log"
	"meno/internal/services"
)

const msgInternal = "Something went wrong. Please try again."

// statusFor maps service errors to an HTTP status and a client-safe message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest, "All fields are required."
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict, "Email already exists."
	case errors.Is(err, services.ErrBadCreds):
		return fiber.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, services.ErrUnauthenticated):
		return fiber.StatusUnauthorized, "Authorization header missing or malformed"
	case errors.Is(err, services.ErrInvalidToken):
		return fiber.StatusForbidden, "Invalid or expired token"
	case errors.Is(err, services.ErrNotFoundOrForbidden):
		return fiber.StatusNotFound, "Note not found or not authorized"
	default:
		return fiber.StatusInternalServerError, msgInternal
	}
}

func writeError(c *fiber.Ctx, err error) error {
	code, msg := statusFor(err)
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

// deny answers with the mapped error and then logs a warn line, so the line
// carries the status the client got.
func deny(c *fiber.Ctx, err error, action string, fields map[string]any) error {
	werr := writeError(c, err)
	applog.Security(c, action, fields)
	return werr
}

// fail is deny for errors nobody expected; the cause goes to the log only.
func fail(c *fiber.Ctx, err error, action string, fields map[string]any) error {
	werr := writeError(c, err)
	applog.Error(c, action, err, fields)
	return werr
}

// ErrorHandler is the app-wide fallback: JSON body, no internals leaked.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := msgInternal
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError {
			msg = fe.Message
		}
	}
	werr := c.Status(code).JSON(fiber.Map{"error": msg})
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}
	return werr
}
