package entity

import "time"

// APIToken respalda una sesión emitida en el login. El ID es el claim jti del
// JWT; si la fila no existe (logout) o expiró, el token deja de ser válido.
type APIToken struct {
	ID        string // uuid (jti)
	UserID    int64
	Name      string // nombre del dispositivo indicado en el login
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión ya caducó.
func (t *APIToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
