package handlers

import (
	"strings"

	"meno/internal/domain"
	"meno/internal/metrics"
	"meno/internal/services"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// RequireToken lets a request through only with a valid bearer token.
// A missing or malformed header is 401, a bad or expired token is 403.
func RequireToken(tokens *services.TokenService, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(h, "Bearer ") {
			m.AuthEvents.WithLabelValues("guard", "missing").Inc()
			return deny(c, services.ErrUnauthenticated, "access.denied.missing", nil)
		}
		raw := strings.SplitN(strings.TrimPrefix(h, "Bearer "), " ", 2)[0]
		claims, err := tokens.Verify(raw)
		if err != nil {
			m.AuthEvents.WithLabelValues("guard", "invalid").Inc()
			return deny(c, err, "access.denied.token", nil)
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// CurrentClaims returns the identity attached by RequireToken.
func CurrentClaims(c *fiber.Ctx) (domain.Claims, bool) {
	cl, ok := c.Locals(claimsKey).(domain.Claims)
	return cl, ok
}
