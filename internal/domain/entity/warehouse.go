package entity

// Warehouse representa una bodega. Code es la clave de negocio (ej. "MAIN"),
// única dentro de la colección.
type Warehouse struct {
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code" validate:"required"`
	Address  string `json:"address"`
	IsActive *bool  `json:"is_active"`
}

// Normalize aplica los defaults.
func (w *Warehouse) Normalize() {
	if w.IsActive == nil {
		w.IsActive = ptrBool(true)
	}
}
