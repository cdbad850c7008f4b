package handlers

import (
	"errors"

	"meno/internal/log"
	"meno/internal/metrics"
	"meno/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth    *services.AuthService
	Metrics *metrics.Metrics
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in services.SignupInput
	if err := c.BodyParser(&in); err != nil {
		h.Metrics.AuthEvents.WithLabelValues("signup", "invalid").Inc()
		return deny(c, services.ErrValidation, "auth.signup.invalid", map[string]any{"reason": "bad_body"})
	}

	id, err := h.Auth.Signup(c.UserContext(), in)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrValidation):
		h.Metrics.AuthEvents.WithLabelValues("signup", "invalid").Inc()
		return deny(c, err, "auth.signup.invalid", map[string]any{"email": in.Email})
	case errors.Is(err, services.ErrConflict):
		h.Metrics.AuthEvents.WithLabelValues("signup", "conflict").Inc()
		return deny(c, err, "auth.signup.conflict", map[string]any{"email": in.Email})
	default:
		h.Metrics.AuthEvents.WithLabelValues("signup", "error").Inc()
		return fail(c, err, "auth.signup.fail", map[string]any{"email": in.Email})
	}

	h.Metrics.AuthEvents.WithLabelValues("signup", "success").Inc()
	c.Status(fiber.StatusCreated)
	log.Audit(c, "auth.signup.success", map[string]any{"email": in.Email, "id": id})
	return c.JSON(fiber.Map{"id": id})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in loginRequest
	// An unreadable body is just a failed login.
	_ = c.BodyParser(&in)

	u, token, err := h.Auth.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCreds) {
			h.Metrics.AuthEvents.WithLabelValues("login", "fail").Inc()
			return deny(c, err, "auth.login.fail", map[string]any{"email": in.Email})
		}
		h.Metrics.AuthEvents.WithLabelValues("login", "error").Inc()
		return fail(c, err, "auth.login.error", map[string]any{"email": in.Email})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": u.Email, "id": u.ID})
	h.Metrics.AuthEvents.WithLabelValues("login", "success").Inc()
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    u,
	})
}
