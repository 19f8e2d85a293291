package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/blog-api/internal/domain"
	"github.com/jhoicas/blog-api/pkg/jwt"
)

// LocalClaims key de c.Locals donde queda el *jwt.Claims validado.
const LocalClaims = "claims"

// TokenParser valida un token y devuelve sus claims.
type TokenParser interface {
	Parse(token string) (*jwt.Claims, error)
}

var (
	errMissingToken = errors.New("authorization header requerido")
	errBadScheme    = errors.New("formato: Bearer <token>")
)

// AuthMiddleware valida el Bearer Token JWT y deja los claims en c.Locals.
func AuthMiddleware(tokens TokenParser, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fail(c, log, domain.NewUnauthorized(errMissingToken))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return fail(c, log, domain.NewUnauthorized(errBadScheme))
		}
		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			return fail(c, log, domain.NewUnauthorized(err))
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// GetClaims devuelve los claims del contexto (después del middleware de auth).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}
