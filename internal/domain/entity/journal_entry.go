package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine es una línea de asiento contable (débito o crédito).
type JournalLine struct {
	AccountCode string          `json:"account_code" validate:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// JournalEntry representa un asiento contable. Esquema latente: sin
// endpoints expuestos.
type JournalEntry struct {
	Number    string        `json:"number" validate:"required"`
	Date      time.Time     `json:"date" validate:"required"`
	Lines     []JournalLine `json:"lines" validate:"required,dive"`
	Reference string        `json:"reference"`
}

// Normalize no tiene defaults que aplicar; existe para cumplir Record.
func (e *JournalEntry) Normalize() {}
