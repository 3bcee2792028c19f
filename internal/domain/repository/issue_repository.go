package repository

import "github.com/correduria/backoffice/internal/domain/entity"

// IssueRepository define el puerto de persistencia para Issue.
type IssueRepository interface {
	Create(issue *entity.Issue) error
	GetByID(id int64) (*entity.Issue, error)
	List() ([]*entity.Issue, error)
	ListByInsurance(insuranceID int64) ([]*entity.Issue, error)
	ListByInsurances(insuranceIDs []int64) ([]*entity.Issue, error)
	// HasOpenByInsurance indica si la póliza tiene incidencias no cerradas,
	// lo que bloquea su eliminación.
	HasOpenByInsurance(insuranceID int64) (bool, error)
	Update(issue *entity.Issue) error
	Delete(id int64) error
}
