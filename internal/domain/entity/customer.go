package entity

import "github.com/shopspring/decimal"

// Customer representa un cliente (maestro de terceros, lado ventas).
type Customer struct {
	Name            string          `json:"name" validate:"required"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	BillingAddress  string          `json:"billing_address"`
	ShippingAddress string          `json:"shipping_address"`
	TaxID           string          `json:"tax_id"`
	CreditLimit     decimal.Decimal `json:"credit_limit" validate:"gte=0"`
	IsActive        *bool           `json:"is_active"`
}

// Normalize aplica los defaults.
func (c *Customer) Normalize() {
	if c.IsActive == nil {
		c.IsActive = ptrBool(true)
	}
}
