package repository

import "github.com/correduria/backoffice/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	GetByAuthID(userID int64) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	// ListByIDs resuelve la proyección "mis clientes" (ids distintos de las
	// pólizas vendidas por un empleado).
	ListByIDs(ids []int64) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
}
