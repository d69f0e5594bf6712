package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-api/internal/application/dto"
	"github.com/invorya/erp-api/internal/application/validate"
	"github.com/invorya/erp-api/internal/domain"
)

// Longitud máxima del mensaje de un error de almacén inesperado.
const maxErrorLen = 120

// respondError traduce un error de caso de uso al cuerpo y status HTTP.
// conflictMsg es el mensaje para claves de negocio duplicadas del recurso.
func respondError(c *fiber.Ctx, err error, conflictMsg string) error {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "Request validation failed", Fields: verr.Fields,
		})
	case errors.Is(err, domain.ErrDuplicate):
		if conflictMsg == "" {
			conflictMsg = "Already exists"
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "ALREADY_EXISTS", Message: conflictMsg,
		})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "STORE_UNAVAILABLE", Message: "Database not configured",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "Resource not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: truncate(err.Error(), maxErrorLen),
		})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: "Invalid request body",
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
