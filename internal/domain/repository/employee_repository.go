package repository

import "github.com/correduria/backoffice/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	// GetByAuthID resuelve el registro de empleado del usuario autenticado.
	GetByAuthID(userID int64) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
	ListByCompany(companyID int64) ([]*entity.Employee, error)
	// CountByCompany se usa para bloquear el borrado de empresas con plantilla.
	CountByCompany(companyID int64) (int, error)
	// ManagerExists indica si la empresa ya tiene un usuario con rol Manager.
	ManagerExists(companyID int64) (bool, error)
	Update(employee *entity.Employee) error
	Delete(id int64) error
}
