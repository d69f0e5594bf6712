package entity

// Account representa una cuenta contable del plan de cuentas. Esquema
// latente: sin endpoints expuestos.
type Account struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=asset liability equity income expense receivable payable bank tax"`
	Currency string `json:"currency"`
	IsActive *bool  `json:"is_active"`
}

// Normalize aplica los defaults: currency "USD", is_active true.
func (a *Account) Normalize() {
	if a.Currency == "" {
		a.Currency = "USD"
	}
	if a.IsActive == nil {
		a.IsActive = ptrBool(true)
	}
}
