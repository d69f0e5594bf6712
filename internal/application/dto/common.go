// Package dto define los cuerpos de petición y respuesta de la API.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/invorya/erp-api/internal/application/validate"
)

// ErrorResponse cuerpo de error HTTP. Fields solo viene en errores de validación.
type ErrorResponse struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Fields  []validate.FieldError `json:"fields,omitempty"`
}

// CreateResponse respuesta mínima de creación: el id asignado por el almacén.
type CreateResponse struct {
	ID string `json:"id"`
}

// TransactionResponse respuesta del registro de una transacción de inventario.
type TransactionResponse struct {
	ID            string          `json:"id"`
	AppliedChange decimal.Decimal `json:"applied_change"`
}

// DashboardTotals conteos por colección para el dashboard.
type DashboardTotals struct {
	Products        int64 `json:"products"`
	Customers       int64 `json:"customers"`
	Suppliers       int64 `json:"suppliers"`
	OpenSalesOrders int64 `json:"open_sales_orders"`
	Invoices        int64 `json:"invoices"`
	Payments        int64 `json:"payments"`
	StockItems      int64 `json:"stock_items"`
}

// DashboardResponse resumen del dashboard: totales y alerta de stock bajo.
type DashboardResponse struct {
	Totals   DashboardTotals  `json:"totals"`
	LowStock []map[string]any `json:"low_stock"`
}
