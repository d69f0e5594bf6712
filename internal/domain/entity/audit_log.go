package entity

// AuditLog registra una acción sobre una entidad. Esquema latente: sin
// endpoints expuestos.
type AuditLog struct {
	Action   string         `json:"action" validate:"required"`
	Entity   string         `json:"entity" validate:"required"`
	EntityID string         `json:"entity_id" validate:"required"`
	User     string         `json:"user"`
	Metadata map[string]any `json:"metadata"`
}

// Normalize aplica los defaults: metadata mapa vacío.
func (a *AuditLog) Normalize() {
	if a.Metadata == nil {
		a.Metadata = map[string]any{}
	}
}
