package repository

import "github.com/correduria/backoffice/internal/domain/entity"

// TokenRepository define el puerto de persistencia para las sesiones API.
type TokenRepository interface {
	Create(token *entity.APIToken) error
	GetByID(id string) (*entity.APIToken, error)
	// DeleteByUser revoca todas las sesiones del usuario (logout).
	DeleteByUser(userID int64) error
	// DeleteExpired limpia sesiones caducadas; se puede invocar desde login.
	DeleteExpired() error
}
