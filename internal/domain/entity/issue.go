package entity

// Estados de una incidencia. Una póliza solo puede eliminarse cuando todas
// sus incidencias están en estado Cerrada.
const (
	IssueOpen    = "Abierta"
	IssueClosed  = "Cerrada"
	IssuePending = "Pendiente" // estado por defecto al crear
)

// ValidIssueStatus indica si s es un estado de incidencia conocido.
func ValidIssueStatus(s string) bool {
	switch s {
	case IssueOpen, IssueClosed, IssuePending:
		return true
	}
	return false
}

// Issue representa una incidencia (siniestro/ticket) sobre una póliza.
// insurance_id queda a null si la póliza se elimina.
type Issue struct {
	ID          int64
	InsuranceID *int64
	Subject     string
	Status      string
}
