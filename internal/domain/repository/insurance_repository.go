package repository

import "github.com/correduria/backoffice/internal/domain/entity"

// InsuranceRepository define el puerto de persistencia para Insurance.
type InsuranceRepository interface {
	Create(insurance *entity.Insurance) error
	GetByID(id int64) (*entity.Insurance, error)
	List() ([]*entity.Insurance, error)
	ListByEmployee(employeeID int64) ([]*entity.Insurance, error)
	ListByCustomer(customerID int64) ([]*entity.Insurance, error)
	CountByEmployee(employeeID int64) (int, error)
	CountByCustomer(customerID int64) (int, error)
	// ExistsForEmployeeAndCustomer comprueba la relación comercial que
	// autoriza el detalle de cliente ("es cliente tuyo").
	ExistsForEmployeeAndCustomer(employeeID, customerID int64) (bool, error)
	Update(insurance *entity.Insurance) error
	Delete(id int64) error
}
