package entity

import "github.com/shopspring/decimal"

// Tipos de impuesto.
const (
	TaxTypeVAT         = "vat"
	TaxTypeGST         = "gst"
	TaxTypeSales       = "sales"
	TaxTypeWithholding = "withholding"
	TaxTypeOther       = "other"
)

// Tax representa una definición de impuesto. Rate es porcentaje (5.0 = 5%).
type Tax struct {
	Name        string          `json:"name" validate:"required"`
	Rate        decimal.Decimal `json:"rate" validate:"gte=0"`
	Type        string          `json:"type" validate:"omitempty,oneof=vat gst sales withholding other"`
	IsInclusive bool            `json:"is_inclusive"`
	IsActive    *bool           `json:"is_active"`
}

// Normalize aplica los defaults: type "vat", is_active true.
func (t *Tax) Normalize() {
	if t.Type == "" {
		t.Type = TaxTypeVAT
	}
	if t.IsActive == nil {
		t.IsActive = ptrBool(true)
	}
}
