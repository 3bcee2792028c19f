package dto

import "time"

// CreateUserRequest entrada para crear un usuario. Según el rol se crea
// también la ficha satélite: Empleado/Manager -> Employee (company_id),
// Cliente -> Customer (phone_number + address). La contraseña inicial es el
// propio DNI; no se acepta contraseña en el alta.
type CreateUserRequest struct {
	DNI         string  `json:"dni"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email"`
	Role        string  `json:"role"`
	CompanyID   *int64  `json:"company_id"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// UpdateUserRequest entrada para actualizar un usuario. El rol viaja para
// poder detectar (y rechazar) cualquier intento de cambiarlo.
type UpdateUserRequest struct {
	DNI         string  `json:"dni"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email"`
	Role        string  `json:"role"`
	CompanyID   *int64  `json:"company_id"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// UserResponse salida de un usuario. Nunca incluye la contraseña: este tipo
// es la única forma en que un User cruza la frontera de serialización.
type UserResponse struct {
	ID        int64     `json:"id"`
	DNI       string    `json:"dni"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     *string   `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserDetailResponse detalle de un usuario con su ficha satélite anidada.
type UserDetailResponse struct {
	User     UserResponse      `json:"user"`
	Employee *EmployeeResponse `json:"employee,omitempty"`
	Customer *CustomerResponse `json:"customer,omitempty"`
}
