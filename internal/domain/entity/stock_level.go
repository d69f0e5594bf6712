package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel es el agregado derivado de existencias por par (sku, bodega).
// Se muta únicamente como efecto del registro de transacciones de inventario;
// la unicidad del par es conceptual, el almacén no la garantiza.
type StockLevel struct {
	ProductSKU    string          `json:"product_sku"`
	WarehouseCode string          `json:"warehouse_code"`
	OnHand        decimal.Decimal `json:"on_hand"`
	Reserved      decimal.Decimal `json:"reserved"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Normalize no tiene defaults que aplicar; existe para cumplir Record.
func (s *StockLevel) Normalize() {}
