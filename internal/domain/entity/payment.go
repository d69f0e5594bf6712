package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago.
const (
	PaymentTypeInbound  = "inbound"
	PaymentTypeOutbound = "outbound"
)

// Payment representa un pago recibido (inbound) o emitido (outbound).
// Number es la clave de negocio, única dentro de la colección.
type Payment struct {
	Number    string           `json:"number" validate:"required"`
	Type      string           `json:"type" validate:"required,oneof=inbound outbound"`
	PartnerID string           `json:"partner_id" validate:"required"`
	Date      time.Time        `json:"date" validate:"required"`
	Currency  string           `json:"currency"`
	Amount    *decimal.Decimal `json:"amount" validate:"required"` // obligatorio; 0 explícito es válido
	Method    string           `json:"method"`
	Reference string           `json:"reference"`
}

// Normalize aplica los defaults: currency "USD", method "cash".
func (p *Payment) Normalize() {
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Method == "" {
		p.Method = "cash"
	}
}
