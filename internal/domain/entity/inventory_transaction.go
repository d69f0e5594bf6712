package entity

import "github.com/shopspring/decimal"

// Tipos de transacción de inventario.
const (
	TransactionTypeIn         = "in"
	TransactionTypeOut        = "out"
	TransactionTypeTransfer   = "transfer"
	TransactionTypeAdjustment = "adjustment"
)

// InventoryTransaction representa un movimiento de inventario registrado.
// Inmutable una vez insertado: el sistema nunca lo actualiza ni lo borra.
// Los traslados no se descomponen aquí; el cliente emite dos transacciones
// in/out separadas.
type InventoryTransaction struct {
	Type          string           `json:"type" validate:"required,oneof=in out transfer adjustment"`
	ProductSKU    string           `json:"product_sku" validate:"required"`
	Quantity      *decimal.Decimal `json:"quantity" validate:"required"` // obligatorio pero sin restricción de signo; 0 explícito es válido
	WarehouseCode string           `json:"warehouse_code" validate:"required"`
	Reference     string           `json:"reference"`
	Notes         string           `json:"notes"`
}

// QuantityValue devuelve la cantidad, 0 si no viene.
func (t *InventoryTransaction) QuantityValue() decimal.Decimal {
	return decOrZero(t.Quantity)
}

// Normalize no tiene defaults que aplicar; existe para cumplir Record.
func (t *InventoryTransaction) Normalize() {}
