package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/blog-api/internal/application/dto"
	"github.com/jhoicas/blog-api/internal/domain"
)

// statusFor devuelve el status HTTP de cada tipo de error de dominio.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// ok responde status con el dato envuelto.
func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.OK(data))
}

// fail traduce err al envelope de error. Los errores que no son *domain.Error se
// tratan como ERR-00. Conflictos y fallas internas se registran con la causa; la
// causa nunca llega al cliente.
func fail(c *fiber.Ctx, log zerolog.Logger, err error) error {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.NewInternal(err)
	}
	status := statusFor(de.Kind)
	if status >= fiber.StatusInternalServerError {
		log.Error().
			Err(de.Cause).
			Str("code", string(de.Code)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("falla al procesar la petición")
	}
	return c.Status(status).JSON(dto.Fail(de.Messages...))
}

// ErrorHandler para fiber.Config: convierte errores que escapan de los handlers
// (panics recuperados, *fiber.Error del framework) al mismo envelope. Los rechazos
// del framework por debajo de 500 conservan su status y llevan el código ERR-05.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch {
			case fe.Code == fiber.StatusNotFound:
				return fail(c, log, domain.NewRouteNotFound(c.Path()))
			case fe.Code < fiber.StatusInternalServerError:
				return c.Status(fe.Code).JSON(dto.Fail(string(domain.CodeInvalidBody) + " " + fe.Message))
			}
		}
		return fail(c, log, err)
	}
}

// NotFound responde ERR-07 para cualquier ruta no registrada. Va al final de la cadena.
func NotFound(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return fail(c, log, domain.NewRouteNotFound(c.Path()))
	}
}
