package usecase

import (
	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/policy"
	"github.com/correduria/backoffice/internal/application/scope"
	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

// IssueUsecase gestiona incidencias sobre pólizas.
type IssueUsecase struct {
	issues     repository.IssueRepository
	insurances repository.InsuranceRepository
	customers  repository.CustomerRepository
	employees  repository.EmployeeRepository
	users      repository.UserRepository
	resolver   *scope.Resolver
}

func NewIssueUsecase(
	issues repository.IssueRepository,
	insurances repository.InsuranceRepository,
	customers repository.CustomerRepository,
	employees repository.EmployeeRepository,
	users repository.UserRepository,
	resolver *scope.Resolver,
) *IssueUsecase {
	return &IssueUsecase{
		issues:     issues,
		insurances: insurances,
		customers:  customers,
		employees:  employees,
		users:      users,
		resolver:   resolver,
	}
}

// List devuelve todas las incidencias enriquecidas (solo Admin).
func (uc *IssueUsecase) List(actor *entity.User) ([]dto.IssueEnriched, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.IssueViewAll(actor) {
		return nil, errNoAutorizado()
	}
	list, err := uc.issues.List()
	if err != nil {
		return nil, err
	}
	return uc.enrichAll(list)
}

// Create abre una incidencia sobre una póliza existente. Sin estado explícito
// queda Pendiente.
func (uc *IssueUsecase) Create(actor *entity.User, req dto.CreateIssueRequest) (*dto.IssueEnriched, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.IssueCreate(actor) {
		return nil, errNoAutorizado()
	}

	fe := domain.FieldErrors{}
	checkLen(fe, "subject", req.Subject, 5, 255)
	if req.InsuranceID == nil {
		fe.Add("insurance_id", "La póliza es obligatoria.")
	}
	status := req.Status
	if status == "" {
		status = entity.IssuePending
	} else if !entity.ValidIssueStatus(status) {
		fe.Add("status", "Estado de incidencia desconocido.")
	}
	if err := finish(fe); err != nil {
		return nil, err
	}

	insurance, err := uc.insurances.GetByID(*req.InsuranceID)
	if err != nil {
		return nil, err
	}
	if insurance == nil {
		return nil, domain.Integrity("La póliza indicada no existe.")
	}

	issue := &entity.Issue{
		InsuranceID: &insurance.ID,
		Subject:     req.Subject,
		Status:      status,
	}
	if err := uc.issues.Create(issue); err != nil {
		return nil, err
	}
	return uc.enrich(issue)
}

// Show devuelve una incidencia enriquecida. Los roles no Admin pasan además
// la puerta de propiedad a través de la póliza.
func (uc *IssueUsecase) Show(actor *entity.User, id int64) (*dto.IssueEnriched, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.IssueViewDetail(actor) {
		return nil, errNoAutorizado()
	}
	issue, err := uc.issues.GetByID(id)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, domain.NotFound("Incidencia no encontrada")
	}
	if actor.Role != entity.RoleAdmin {
		mine, err := uc.resolver.IsMyIssue(actor, issue)
		if err != nil {
			return nil, err
		}
		if !mine {
			return nil, errNoAutorizado()
		}
	}
	return uc.enrich(issue)
}

// Update modifica asunto, estado o póliza de una incidencia.
func (uc *IssueUsecase) Update(actor *entity.User, id int64, req dto.UpdateIssueRequest) (*dto.IssueEnriched, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.IssueUpdate(actor) {
		return nil, errNoAutorizado()
	}
	issue, err := uc.issues.GetByID(id)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, domain.NotFound("Incidencia no encontrada")
	}
	fe := domain.FieldErrors{}
	checkLen(fe, "subject", req.Subject, 5, 255)
	if !entity.ValidIssueStatus(req.Status) {
		fe.Add("status", "Estado de incidencia desconocido.")
	}
	if err := finish(fe); err != nil {
		return nil, err
	}
	if req.InsuranceID != nil {
		insurance, err := uc.insurances.GetByID(*req.InsuranceID)
		if err != nil {
			return nil, err
		}
		if insurance == nil {
			return nil, domain.Integrity("La póliza indicada no existe.")
		}
		issue.InsuranceID = &insurance.ID
	}
	issue.Subject = req.Subject
	issue.Status = req.Status
	if err := uc.issues.Update(issue); err != nil {
		return nil, err
	}
	return uc.enrich(issue)
}

// Delete elimina una incidencia (solo Admin).
func (uc *IssueUsecase) Delete(actor *entity.User, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !policy.IssueDelete(actor) {
		return errNoAutorizado()
	}
	issue, err := uc.issues.GetByID(id)
	if err != nil {
		return err
	}
	if issue == nil {
		return domain.NotFound("Incidencia no encontrada")
	}
	return uc.issues.Delete(id)
}

// Mine devuelve las incidencias de las pólizas del actor, enriquecidas.
func (uc *IssueUsecase) Mine(actor *entity.User) ([]dto.IssueEnriched, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.IssueViewMine(actor) {
		return nil, errNoAutorizado()
	}
	list, err := uc.resolver.MyIssues(actor)
	if err != nil {
		return nil, err
	}
	return uc.enrichAll(list)
}

// enrich resuelve la póliza de la incidencia y, a través de ella, las dos
// partes con sus usuarios.
func (uc *IssueUsecase) enrich(issue *entity.Issue) (*dto.IssueEnriched, error) {
	out := &dto.IssueEnriched{Issue: *dto.NewIssueResponse(issue)}
	if issue.InsuranceID == nil {
		return out, nil
	}
	insurance, err := uc.insurances.GetByID(*issue.InsuranceID)
	if err != nil {
		return nil, err
	}
	if insurance == nil {
		return out, nil
	}
	out.Insurance = dto.NewInsuranceResponse(insurance)
	if insurance.CustomerID != nil {
		customer, err := uc.customers.GetByID(*insurance.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			user, err := uc.users.GetByID(customer.AuthID)
			if err != nil {
				return nil, err
			}
			pair := dto.NewCustomerWithUser(customer, user)
			out.Customer = &pair
		}
	}
	if insurance.EmployeeID != nil {
		employee, err := uc.employees.GetByID(*insurance.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee != nil {
			user, err := uc.users.GetByID(employee.AuthID)
			if err != nil {
				return nil, err
			}
			pair := dto.NewEmployeeWithUser(employee, user)
			out.Employee = &pair
		}
	}
	return out, nil
}

func (uc *IssueUsecase) enrichAll(list []*entity.Issue) ([]dto.IssueEnriched, error) {
	out := make([]dto.IssueEnriched, 0, len(list))
	for _, i := range list {
		e, err := uc.enrich(i)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}
