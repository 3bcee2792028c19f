package entity

// Customer es el registro satélite de un User con rol Cliente.
// Se elimina en cascada con el User.
type Customer struct {
	ID          int64
	AuthID      int64   // User.ID
	PhoneNumber *string // 9 dígitos, opcional
	Address     *string // opcional
}
