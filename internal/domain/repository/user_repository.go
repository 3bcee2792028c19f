package repository

import "github.com/correduria/backoffice/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las implementaciones viven en infrastructure. Los Get* devuelven (nil, nil)
// cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByDNI(dni string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
}
