package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseStatusDraft     = "draft"
	PurchaseStatusConfirmed = "confirmed"
	PurchaseStatusReceived  = "received"
	PurchaseStatusBilled    = "billed"
	PurchaseStatusClosed    = "closed"
)

// PurchaseOrderItem es una línea de la orden de compra.
type PurchaseOrderItem struct {
	ProductSKU string           `json:"product_sku" validate:"required"`
	Quantity   *decimal.Decimal `json:"quantity" validate:"required"`
	Cost       *decimal.Decimal `json:"cost" validate:"required"`
	TaxRate    decimal.Decimal  `json:"tax_rate"`
}

// PurchaseOrder representa una orden de compra. Esquema latente: definido y
// validable pero sin endpoints expuestos.
type PurchaseOrder struct {
	Number     string              `json:"number" validate:"required"`
	SupplierID string              `json:"supplier_id" validate:"required"`
	OrderDate  time.Time           `json:"order_date" validate:"required"`
	Currency   string              `json:"currency"`
	Items      []PurchaseOrderItem `json:"items" validate:"required,dive"`
	Notes      string              `json:"notes"`
	Status     string              `json:"status" validate:"omitempty,oneof=draft confirmed received billed closed"`
}

// Normalize aplica los defaults: currency "USD", status "draft".
func (o *PurchaseOrder) Normalize() {
	if o.Currency == "" {
		o.Currency = "USD"
	}
	if o.Status == "" {
		o.Status = PurchaseStatusDraft
	}
}
