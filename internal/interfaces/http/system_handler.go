package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-api/internal/domain/repository"
)

const maxCollectionsShown = 20

// SystemHandler expone los endpoints de salud y diagnóstico.
type SystemHandler struct {
	store          repository.DocumentStore // puede ser nil si la BD no configuró
	dbName         string
	databaseURLSet bool
}

// NewSystemHandler construye el handler de sistema.
func NewSystemHandler(store repository.DocumentStore, dbName string, databaseURLSet bool) *SystemHandler {
	return &SystemHandler{store: store, dbName: dbName, databaseURLSet: databaseURLSet}
}

// Root godoc
// @Summary      Estado del servicio
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "ERP Backend Running"})
}

// Test godoc
// @Summary      Diagnóstico de conectividad con la base de datos
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /test [get]
func (h *SystemHandler) Test(c *fiber.Ctx) error {
	out := fiber.Map{
		"database":      "❌ Not configured",
		"database_url":  h.databaseURLSet,
		"database_name": h.dbName,
	}
	if h.store == nil {
		out["connection_status"] = "❌ No store instance"
		return c.JSON(out)
	}
	out["database"] = "✅ Configured"

	if err := h.store.Ping(c.Context()); err != nil {
		out["connection_status"] = "❌ Error: " + truncate(err.Error(), maxErrorLen)
		return c.JSON(out)
	}

	cols, err := h.store.Collections(c.Context())
	if err != nil {
		out["connection_status"] = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
		return c.JSON(out)
	}
	if len(cols) > maxCollectionsShown {
		cols = cols[:maxCollectionsShown]
	}
	out["connection_status"] = "✅ Connected & Working"
	out["collections"] = cols
	return c.JSON(out)
}
