package dto

import "time"

// CreateCompanyRequest entrada para crear/actualizar una empresa.
type CreateCompanyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	PhoneNumber *string `json:"phone_number"`
}

// UpdateCompanyRequest mismo cuerpo que el alta.
type UpdateCompanyRequest = CreateCompanyRequest

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	PhoneNumber *string   `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyDetailResponse detalle de una empresa: plantilla con usuarios, las
// pólizas vendidas por esa plantilla y las incidencias de esas pólizas
// (el join de tres niveles del "show" de empresa).
type CompanyDetailResponse struct {
	Company    CompanyResponse     `json:"company"`
	Employees  []EmployeeWithUser  `json:"employees"`
	Insurances []InsuranceResponse `json:"insurances"`
	Issues     []IssueResponse     `json:"issues"`
}

// MyCompanyIDResponse salida de /get-my-company-id.
type MyCompanyIDResponse struct {
	CompanyID int64 `json:"company_id"`
}
