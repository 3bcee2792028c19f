package entity

import "time"

// Roles válidos para User. Los literales en castellano son el formato de
// almacenamiento y de API heredado del sistema original.
const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Empleado"
	RoleCustomer = "Cliente"
)

// Roles devuelve el conjunto cerrado de roles.
func Roles() []string {
	return []string{RoleAdmin, RoleManager, RoleEmployee, RoleCustomer}
}

// ValidRole indica si s es uno de los roles del sistema.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleManager, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

// User representa una cuenta del sistema. El rol es inmutable tras la
// creación; los registros satélite (Employee o Customer) cuelgan de AuthID.
type User struct {
	ID           int64
	DNI          string  // 9 caracteres: 8 dígitos + letra
	FirstName    string
	LastName     string
	Email        *string // único, opcional
	PasswordHash string  // bcrypt; nunca viaja en respuestas
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve nombre y apellido (usado como username en el login).
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsStaff indica si el usuario tiene un registro Employee asociado
// (los roles Empleado y Manager comparten tabla satélite).
func (u *User) IsStaff() bool {
	return u.Role == RoleEmployee || u.Role == RoleManager
}
