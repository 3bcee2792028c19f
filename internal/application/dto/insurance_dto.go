package dto

import "time"

// CreateInsuranceRequest entrada para crear una póliza. Un Empleado no envía
// employee_id (se asigna él mismo); Admin y Manager pueden asignar a
// cualquiera.
type CreateInsuranceRequest struct {
	SubjectType string `json:"subject_type"`
	Description string `json:"description"`
	CustomerID  *int64 `json:"customer_id"`
	EmployeeID  *int64 `json:"employee_id"`
}

// UpdateInsuranceRequest solo la descripción es editable: el ramo y las
// partes de una póliza emitida no se tocan.
type UpdateInsuranceRequest struct {
	Description string `json:"description"`
}

// InsuranceResponse salida de una póliza.
type InsuranceResponse struct {
	ID          int64     `json:"id"`
	SubjectType string    `json:"subject_type"`
	Description string    `json:"description"`
	CustomerID  *int64    `json:"customer_id"`
	EmployeeID  *int64    `json:"employee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InsuranceEnriched póliza con sus dos partes resueltas, el formato de los
// listados de pólizas.
type InsuranceEnriched struct {
	Insurance InsuranceResponse `json:"insurance"`
	Customer  *CustomerWithUser `json:"customer"`
	Employee  *EmployeeWithUser `json:"employee"`
}

// InsuranceDetailResponse detalle de una póliza: partes más incidencias.
type InsuranceDetailResponse struct {
	Insurance InsuranceResponse `json:"insurance"`
	Customer  *CustomerWithUser `json:"customer"`
	Employee  *EmployeeWithUser `json:"employee"`
	Issues    []IssueResponse   `json:"issues"`
}
