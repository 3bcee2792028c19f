package dto

// CreateIssueRequest entrada para abrir una incidencia sobre una póliza. Si
// no se envía estado queda Pendiente.
type CreateIssueRequest struct {
	InsuranceID *int64 `json:"insurance_id"`
	Subject     string `json:"subject"`
	Status      string `json:"status"`
}

// UpdateIssueRequest entrada para actualizar una incidencia. InsuranceID
// permite reasignarla a otra póliza; omitido, la incidencia no se mueve.
type UpdateIssueRequest struct {
	Subject     string `json:"subject"`
	Status      string `json:"status"`
	InsuranceID *int64 `json:"insurance_id"`
}

// IssueResponse salida de una incidencia.
type IssueResponse struct {
	ID          int64  `json:"id"`
	InsuranceID *int64 `json:"insurance_id"`
	Subject     string `json:"subject"`
	Status      string `json:"status"`
}

// IssueEnriched incidencia con la póliza y sus partes resueltas, el formato
// de los listados de incidencias.
type IssueEnriched struct {
	Issue     IssueResponse      `json:"issue"`
	Insurance *InsuranceResponse `json:"insurance"`
	Customer  *CustomerWithUser  `json:"customer"`
	Employee  *EmployeeWithUser  `json:"employee"`
}
