package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-api/internal/application/analytics"
)

// DashboardHandler expone el resumen ejecutivo.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de totales y stock bajo
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	res, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(res)
}
