package entity

import "time"

// Company representa una empresa de la correduría. Posee cero o más empleados
// y solo puede eliminarse cuando no tiene ninguno.
type Company struct {
	ID          int64
	Name        string  // 5–50 caracteres
	Description *string // opcional, 5–255 caracteres
	PhoneNumber *string // opcional, 9 dígitos
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
