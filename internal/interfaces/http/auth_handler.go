package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/blog-api/internal/application/auth"
	"github.com/jhoicas/blog-api/internal/application/dto"
	"github.com/jhoicas/blog-api/internal/domain"
)

// AuthHandler maneja login y consulta del token actual.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /v1/accounts/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, h.log, domain.NewInvalidBody(err))
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Me godoc
// @Summary      Claims del token actual
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Router       /v1/accounts/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return fail(c, h.log, domain.NewUnauthorized(errMissingToken))
	}
	return ok(c, fiber.StatusOK, dto.ClaimsResponse{
		Name:      claims.Name,
		Role:      claims.Role,
		Custom:    claims.Custom,
		IssuedAt:  claims.IssuedAt.Unix(),
		ExpiresAt: claims.ExpiresAt.Unix(),
	})
}
