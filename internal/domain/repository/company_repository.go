package repository

import "github.com/correduria/backoffice/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id int64) (*entity.Company, error)
	List() ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id int64) error
}
