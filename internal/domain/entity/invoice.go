package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de factura.
const (
	InvoiceTypeSales    = "sales"
	InvoiceTypePurchase = "purchase"
)

// Estados de una factura.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusPosted    = "posted"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// InvoiceLine es una línea de factura.
type InvoiceLine struct {
	ProductSKU  string           `json:"product_sku" validate:"required"`
	Description string           `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice   *decimal.Decimal `json:"unit_price" validate:"required"`
	TaxRate     decimal.Decimal  `json:"tax_rate"`
}

// Subtotal de la línea: cantidad × precio unitario.
func (l InvoiceLine) Subtotal() decimal.Decimal {
	return decOrZero(l.Quantity).Mul(decOrZero(l.UnitPrice))
}

// Invoice representa una factura de venta o compra. PartnerID es el cliente
// en facturas de venta y el proveedor en facturas de compra. Number es la
// clave de negocio, única dentro de la colección.
type Invoice struct {
	Number      string        `json:"number" validate:"required"`
	Type        string        `json:"type" validate:"required,oneof=sales purchase"`
	PartnerID   string        `json:"partner_id" validate:"required"`
	InvoiceDate time.Time     `json:"invoice_date" validate:"required"`
	Currency    string        `json:"currency"`
	Lines       []InvoiceLine `json:"lines" validate:"required,dive"`
	Status      string        `json:"status" validate:"omitempty,oneof=draft posted paid cancelled"`
}

// Normalize aplica los defaults: currency "USD", status "draft".
func (i *Invoice) Normalize() {
	if i.Currency == "" {
		i.Currency = "USD"
	}
	if i.Status == "" {
		i.Status = InvoiceStatusDraft
	}
}

// Subtotal es la suma de cantidad × precio unitario de todas las líneas.
func (i *Invoice) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range i.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// TaxTotal es la suma del impuesto de cada línea (tax_rate como porcentaje).
func (i *Invoice) TaxTotal() decimal.Decimal {
	total := decimal.Zero
	hundred := decimal.NewFromInt(100)
	for _, l := range i.Lines {
		total = total.Add(l.Subtotal().Mul(l.TaxRate).Div(hundred))
	}
	return total
}

// GrandTotal es subtotal + impuestos.
func (i *Invoice) GrandTotal() decimal.Decimal {
	return i.Subtotal().Add(i.TaxTotal())
}
