package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/blog-api/internal/application/usecase"
)

// CategoryPostsHandler expone los posts de una categoría.
type CategoryPostsHandler struct {
	uc  *usecase.CategoryPostsUseCase
	log zerolog.Logger
}

// NewCategoryPostsHandler construye el handler.
func NewCategoryPostsHandler(uc *usecase.CategoryPostsUseCase, log zerolog.Logger) *CategoryPostsHandler {
	return &CategoryPostsHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar posts de una categoría
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /v1/categories/{id}/posts [get]
func (h *CategoryPostsHandler) List(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	out, err := h.uc.List(c.UserContext(), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}
