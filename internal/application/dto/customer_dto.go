package dto

// CreateCustomerRequest alta directa de un cliente para un usuario que ya
// existe con rol Cliente.
type CreateCustomerRequest struct {
	AuthID      int64   `json:"auth_id"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// UpdateCustomerRequest datos de contacto del cliente.
type UpdateCustomerRequest struct {
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          int64   `json:"id"`
	AuthID      int64   `json:"auth_id"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// CustomerWithUser par cliente + usuario (sin contraseña), el formato de
// todos los listados de clientes.
type CustomerWithUser struct {
	Customer CustomerResponse `json:"customer"`
	User     *UserResponse    `json:"user"`
}

// CustomerDetailResponse detalle de un cliente visto por su comercial: su
// usuario, las pólizas que le ha vendido el empleado actor y las incidencias
// de esas pólizas.
type CustomerDetailResponse struct {
	Customer   CustomerResponse    `json:"customer"`
	User       *UserResponse       `json:"user"`
	Insurances []InsuranceResponse `json:"insurances"`
	Issues     []IssueResponse     `json:"issues"`
}
