package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-api/internal/application/catalog"
	"github.com/invorya/erp-api/internal/application/dto"
	"github.com/invorya/erp-api/internal/application/inventory"
	"github.com/invorya/erp-api/internal/domain/entity"
)

// InventoryHandler maneja transacciones de inventario y consulta de stock.
type InventoryHandler struct {
	txnUC     *inventory.UseCase
	catalogUC *catalog.UseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(txnUC *inventory.UseCase, catalogUC *catalog.UseCase) *InventoryHandler {
	return &InventoryHandler{txnUC: txnUC, catalogUC: catalogUC}
}

// RecordTransaction godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  entity.InventoryTransaction  true  "Movimiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /inventory/transactions [post]
func (h *InventoryHandler) RecordTransaction(c *fiber.Ctx) error {
	var txn entity.InventoryTransaction
	if err := c.BodyParser(&txn); err != nil {
		return badBody(c)
	}
	res, err := h.txnUC.RecordTransaction(c.Context(), &txn)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransactionResponse{
		ID:            res.ID,
		AppliedChange: res.AppliedChange,
	})
}

// ListStock godoc
// @Summary      Listar niveles de stock
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  map[string]any
// @Router       /inventory/stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	out, err := h.catalogUC.List(c.Context(), catalog.StockLevels)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
