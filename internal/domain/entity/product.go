package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. SKU es la clave de negocio,
// única dentro de la colección (verificada por consulta antes de insertar,
// no por constraint del almacén).
type Product struct {
	SKU         string          `json:"sku" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	UOM         string          `json:"uom"` // unidad de medida, ej. "unit", "kg"
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Cost        decimal.Decimal `json:"cost" validate:"gte=0"`
	TaxCode     string          `json:"tax_code"`
	IsActive    *bool           `json:"is_active"`
}

// Normalize aplica los defaults: uom "unit", is_active true.
func (p *Product) Normalize() {
	if p.UOM == "" {
		p.UOM = "unit"
	}
	if p.IsActive == nil {
		p.IsActive = ptrBool(true)
	}
}
