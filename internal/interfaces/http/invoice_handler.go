package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/erp-api/internal/application/billing"
)

// InvoiceHandler maneja operaciones sobre facturas individuales.
type InvoiceHandler struct {
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler de facturas.
func NewInvoiceHandler(pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{pdfUC: pdfUC}
}

// InvoicePDF godoc
// @Summary      Generar PDF de una factura
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices/{id}/pdf [get]
func (h *InvoiceHandler) InvoicePDF(c *fiber.Ctx) error {
	pdf, err := h.pdfUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "")
	}
	c.Set("Content-Type", "application/pdf")
	return c.Send(pdf)
}
