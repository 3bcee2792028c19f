package dto

// CreateEmployeeRequest alta directa de un empleado para un usuario que ya
// existe con rol Empleado o Manager.
type CreateEmployeeRequest struct {
	AuthID    int64  `json:"auth_id"`
	CompanyID *int64 `json:"company_id"`
}

// UpdateEmployeeRequest solo permite mover al empleado de empresa.
type UpdateEmployeeRequest struct {
	CompanyID *int64 `json:"company_id"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID        int64  `json:"id"`
	AuthID    int64  `json:"auth_id"`
	CompanyID *int64 `json:"company_id"`
}

// EmployeeWithUser par empleado + usuario (sin contraseña), el formato de
// todos los listados de empleados.
type EmployeeWithUser struct {
	Employee EmployeeResponse `json:"employee"`
	User     *UserResponse    `json:"user"`
}

// EmployeeDetailResponse detalle de un empleado: su usuario, sus pólizas y
// las incidencias de esas pólizas.
type EmployeeDetailResponse struct {
	Employee   EmployeeResponse    `json:"employee"`
	User       *UserResponse       `json:"user"`
	Insurances []InsuranceResponse `json:"insurances"`
	Issues     []IssueResponse     `json:"issues"`
}
