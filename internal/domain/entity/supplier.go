package entity

// Supplier representa un proveedor (maestro de terceros, lado compras).
type Supplier struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	TaxID    string `json:"tax_id"`
	IsActive *bool  `json:"is_active"`
}

// Normalize aplica los defaults.
func (s *Supplier) Normalize() {
	if s.IsActive == nil {
		s.IsActive = ptrBool(true)
	}
}
