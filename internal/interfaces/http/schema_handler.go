package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-api/internal/domain/schema"
)

// SchemaHandler expone la descripción estática de los modelos de datos.
type SchemaHandler struct{}

// NewSchemaHandler construye el handler de esquema.
func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{}
}

// Schema godoc
// @Summary      Esquema de todos los modelos
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /schema [get]
func (h *SchemaHandler) Schema(c *fiber.Ctx) error {
	out := make(map[string]any)
	for name, m := range schema.Models() {
		out[name] = m.JSON()
	}
	return c.JSON(out)
}
