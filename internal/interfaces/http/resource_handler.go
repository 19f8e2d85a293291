package http

import (
	"context"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/blog-api/internal/domain"
)

// ResourceService casos de uso CRUD que expone un ResourceHandler.
// C entrada de creación, U entrada de actualización, R salida.
type ResourceService[C, U, R any] interface {
	List(ctx context.Context) ([]R, error)
	GetByID(ctx context.Context, id int) (R, error)
	Create(ctx context.Context, in C) (int, R, error)
	Update(ctx context.Context, id int, in U) (R, error)
	Delete(ctx context.Context, id int) error
}

// ResourceHandler maneja las peticiones HTTP CRUD de un recurso bajo basePath.
type ResourceHandler[C, U, R any] struct {
	svc      ResourceService[C, U, R]
	basePath string
	log      zerolog.Logger
}

// NewResourceHandler construye el handler. basePath es la ruta pública del recurso
// (por ejemplo /v1/categories) y se usa para el header Location.
func NewResourceHandler[C, U, R any](svc ResourceService[C, U, R], basePath string, log zerolog.Logger) *ResourceHandler[C, U, R] {
	return &ResourceHandler[C, U, R]{svc: svc, basePath: basePath, log: log}
}

// idRoute segmento de ruta para claves primarias: enteros en el rango de una columna
// SERIAL (int4). Cualquier otro valor no coincide y cae en NotFound.
const idRoute = "/:id<min(1);max(2147483647)>"

// Mount registra las rutas del recurso en r.
func (h *ResourceHandler[C, U, R]) Mount(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get(idRoute, h.GetByID)
	r.Put(idRoute, h.Update)
	r.Delete(idRoute, h.Delete)
}

// List godoc
// @Summary      Listar recursos
// @Tags         resources
// @Produce      json
// @Param        resource  path  string  true  "categories | posts | users"
// @Success      200  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /v1/{resource} [get]
func (h *ResourceHandler[C, U, R]) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtener recurso por ID
// @Tags         resources
// @Produce      json
// @Param        resource  path  string  true  "categories | posts | users"
// @Param        id        path  int     true  "ID"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /v1/{resource}/{id} [get]
func (h *ResourceHandler[C, U, R]) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear recurso
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resource  path  string  true  "categories | posts | users"
// @Success      201  {object}  dto.Envelope
// @Header       201  {string}  Location  "/v1/{resource}/{id}"
// @Failure      400  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /v1/{resource} [post]
func (h *ResourceHandler[C, U, R]) Create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return fail(c, h.log, domain.NewInvalidBody(err))
	}
	id, out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	c.Location(h.basePath + "/" + strconv.Itoa(id))
	return ok(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Actualizar recurso
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resource  path  string  true  "categories | posts | users"
// @Param        id        path  int     true  "ID"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /v1/{resource}/{id} [put]
func (h *ResourceHandler[C, U, R]) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	var in U
	if err := c.BodyParser(&in); err != nil {
		return fail(c, h.log, domain.NewInvalidBody(err))
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar recurso
// @Tags         resources
// @Param        resource  path  string  true  "categories | posts | users"
// @Param        id        path  int     true  "ID"
// @Success      204
// @Failure      404  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /v1/{resource}/{id} [delete]
func (h *ResourceHandler[C, U, R]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return fail(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// paramID lee :id. La restricción de la ruta ya garantiza el rango; se vuelve a
// comprobar para rutas registradas sin ella.
func paramID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 || id > math.MaxInt32 {
		return 0, domain.NewRouteNotFound(c.Path())
	}
	return id, nil
}
