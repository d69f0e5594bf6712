package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta.
const (
	OrderStatusDraft     = "draft"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusInvoiced  = "invoiced"
	OrderStatusClosed    = "closed"
)

// SalesOrderItem es una línea de la orden de venta.
type SalesOrderItem struct {
	ProductSKU string           `json:"product_sku" validate:"required"`
	Quantity   *decimal.Decimal `json:"quantity" validate:"required"`
	Price      *decimal.Decimal `json:"price" validate:"required"`
	TaxRate    decimal.Decimal  `json:"tax_rate"`
}

// SalesOrder representa una orden de venta. Number es la clave de negocio,
// única dentro de la colección.
type SalesOrder struct {
	Number     string           `json:"number" validate:"required"`
	CustomerID string           `json:"customer_id" validate:"required"`
	OrderDate  time.Time        `json:"order_date" validate:"required"`
	Currency   string           `json:"currency"`
	Items      []SalesOrderItem `json:"items" validate:"required,dive"`
	Notes      string           `json:"notes"`
	Status     string           `json:"status" validate:"omitempty,oneof=draft confirmed delivered invoiced closed"`
}

// Normalize aplica los defaults: currency "USD", status "draft".
func (o *SalesOrder) Normalize() {
	if o.Currency == "" {
		o.Currency = "USD"
	}
	if o.Status == "" {
		o.Status = OrderStatusDraft
	}
}
