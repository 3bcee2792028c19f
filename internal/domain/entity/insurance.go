package entity

import "time"

// Tipos de póliza admitidos (enum cerrado de subject_type).
var SubjectTypes = []string{
	"Vida", "Robo", "Defunción", "Accidente", "Incendios",
	"Asistencia_carretera", "Salud", "Hogar", "Coche",
	"Moto", "Viaje", "Mascotas", "Otros",
}

// ValidSubjectType indica si s es un tipo de póliza del catálogo.
func ValidSubjectType(s string) bool {
	for _, t := range SubjectTypes {
		if t == s {
			return true
		}
	}
	return false
}

// Insurance representa una póliza vendida por un empleado a un cliente.
// SubjectType es inmutable tras la creación; solo la descripción se actualiza.
// Los FKs quedan a null si se borra el cliente o el empleado.
type Insurance struct {
	ID          int64
	SubjectType string
	Description string // 5–255 caracteres
	CustomerID  *int64
	EmployeeID  *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
