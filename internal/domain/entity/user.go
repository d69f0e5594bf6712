package entity

// Roles de usuario.
const (
	RoleAdmin      = "admin"
	RoleSales      = "sales"
	RolePurchasing = "purchasing"
	RoleAccounting = "accounting"
	RoleWarehouse  = "warehouse"
)

// User representa un usuario del sistema. Esquema latente: la API no expone
// endpoints de usuarios ni autenticación.
type User struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin sales purchasing accounting warehouse"`
	IsActive *bool  `json:"is_active"`
}

// Normalize aplica los defaults: role "admin", is_active true.
func (u *User) Normalize() {
	if u.Role == "" {
		u.Role = RoleAdmin
	}
	if u.IsActive == nil {
		u.IsActive = ptrBool(true)
	}
}
