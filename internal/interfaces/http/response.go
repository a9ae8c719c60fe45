package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/rs/zerolog/log"
)

// internalError responde 500 sin filtrar detalle interno al cliente; el error
// real queda en el log.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
