package usecase

import (
	"time"

	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/policy"
	"github.com/correduria/backoffice/internal/application/scope"
	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

// InsuranceUsecase gestiona pólizas. El ramo (subject_type) es inmutable;
// la puerta de propiedad aplica a detalle, actualización y borrado para los
// roles no Admin.
type InsuranceUsecase struct {
	insurances repository.InsuranceRepository
	customers  repository.CustomerRepository
	employees  repository.EmployeeRepository
	users      repository.UserRepository
	issues     repository.IssueRepository
	resolver   *scope.Resolver
}

func NewInsuranceUsecase(
	insurances repository.InsuranceRepository,
	customers repository.CustomerRepository,
	employees repository.EmployeeRepository,
	users repository.UserRepository,
	issues repository.IssueRepository,
	resolver *scope.Resolver,
) *InsuranceUsecase {
	return &InsuranceUsecase{
		insurances: insurances,
		customers:  customers,
		employees:  employees,
		users:      users,
		issues:     issues,
		resolver:   resolver,
	}
}

// List devuelve todas las pólizas enriquecidas (solo Admin).
func (uc *InsuranceUsecase) List(actor *entity.User) ([]dto.InsuranceEnriched, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.InsuranceViewAll(actor) {
		return nil, errNoAutorizado()
	}
	list, err := uc.insurances.List()
	if err != nil {
		return nil, err
	}
	return uc.enrichAll(list)
}

// Create emite una póliza. Empleado y Manager venden en su propio nombre;
// Admin debe indicar el comercial en el payload.
func (uc *InsuranceUsecase) Create(actor *entity.User, req dto.CreateInsuranceRequest) (*dto.InsuranceEnriched, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.InsuranceCreate(actor) {
		return nil, errNoAutorizado()
	}

	fe := domain.FieldErrors{}
	if !entity.ValidSubjectType(req.SubjectType) {
		fe.Add("subject_type", "Tipo de póliza desconocido.")
	}
	checkLen(fe, "description", req.Description, 5, 255)
	if req.CustomerID == nil {
		fe.Add("customer_id", "El cliente es obligatorio.")
	}
	if actor.Role == entity.RoleAdmin && req.EmployeeID == nil {
		fe.Add("employee_id", "El empleado es obligatorio.")
	}
	if err := finish(fe); err != nil {
		return nil, err
	}

	var employeeID int64
	if actor.Role == entity.RoleAdmin {
		emp, err := uc.employees.GetByID(*req.EmployeeID)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			return nil, domain.Integrity("El empleado indicado no existe.")
		}
		employeeID = emp.ID
	} else {
		emp, err := uc.resolver.ActorEmployee(actor)
		if err != nil {
			return nil, err
		}
		employeeID = emp.ID
	}

	customer, err := uc.customers.GetByID(*req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.Integrity("El cliente indicado no existe.")
	}

	now := time.Now()
	insurance := &entity.Insurance{
		SubjectType: req.SubjectType,
		Description: req.Description,
		CustomerID:  &customer.ID,
		EmployeeID:  &employeeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.insurances.Create(insurance); err != nil {
		return nil, err
	}
	return uc.enrich(insurance)
}

// Show devuelve una póliza enriquecida.
func (uc *InsuranceUsecase) Show(actor *entity.User, id int64) (*dto.InsuranceEnriched, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.InsuranceView(actor) {
		return nil, errNoAutorizado()
	}
	insurance, err := uc.insurances.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insurance == nil {
		return nil, domain.NotFound("Póliza no encontrada")
	}
	return uc.enrich(insurance)
}

// Detail devuelve la póliza con partes e incidencias. Los roles no Admin
// pasan además la puerta de propiedad.
func (uc *InsuranceUsecase) Detail(actor *entity.User, id int64) (*dto.InsuranceDetailResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.InsuranceView(actor) {
		return nil, errNoAutorizado()
	}
	insurance, err := uc.insurances.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insurance == nil {
		return nil, domain.NotFound("Póliza no encontrada")
	}
	if actor.Role != entity.RoleAdmin {
		mine, err := uc.resolver.IsMine(actor, insurance)
		if err != nil {
			return nil, err
		}
		if !mine {
			return nil, errNoAutorizado()
		}
	}
	enriched, err := uc.enrich(insurance)
	if err != nil {
		return nil, err
	}
	issues, err := uc.issues.ListByInsurance(insurance.ID)
	if err != nil {
		return nil, err
	}
	return &dto.InsuranceDetailResponse{
		Insurance: enriched.Insurance,
		Customer:  enriched.Customer,
		Employee:  enriched.Employee,
		Issues:    dto.NewIssueList(issues),
	}, nil
}

// Update modifica la descripción de una póliza; el resto de campos es
// inmutable. Empleado y Manager solo sobre las suyas.
func (uc *InsuranceUsecase) Update(actor *entity.User, id int64, req dto.UpdateInsuranceRequest) (*dto.InsuranceEnriched, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.InsuranceUpdate(actor) {
		return nil, errNoAutorizado()
	}
	insurance, err := uc.insurances.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insurance == nil {
		return nil, domain.NotFound("Póliza no encontrada")
	}
	if actor.Role != entity.RoleAdmin {
		mine, err := uc.resolver.IsMine(actor, insurance)
		if err != nil {
			return nil, err
		}
		if !mine {
			return nil, errNoAutorizado()
		}
	}
	fe := domain.FieldErrors{}
	checkLen(fe, "description", req.Description, 5, 255)
	if err := finish(fe); err != nil {
		return nil, err
	}
	insurance.Description = req.Description
	insurance.UpdatedAt = time.Now()
	if err := uc.insurances.Update(insurance); err != nil {
		return nil, err
	}
	return uc.enrich(insurance)
}

// Delete elimina una póliza. La regla de integridad (incidencias sin cerrar)
// se evalúa antes que la puerta de propiedad: 400 gana a 403.
func (uc *InsuranceUsecase) Delete(actor *entity.User, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !policy.InsuranceDelete(actor) {
		return errNoAutorizado()
	}
	insurance, err := uc.insurances.GetByID(id)
	if err != nil {
		return err
	}
	if insurance == nil {
		return domain.NotFound("Póliza no encontrada")
	}
	open, err := uc.issues.HasOpenByInsurance(id)
	if err != nil {
		return err
	}
	if open {
		return domain.Integrity("No se puede eliminar una póliza con incidencias abiertas o pendientes.")
	}
	if actor.Role != entity.RoleAdmin {
		mine, err := uc.resolver.IsMine(actor, insurance)
		if err != nil {
			return err
		}
		if !mine {
			return domain.Forbidden("No tienes permisos para eliminar esta póliza.")
		}
	}
	return uc.insurances.Delete(id)
}

// Mine devuelve las pólizas del actor enriquecidas: como comercial para el
// personal, como tomador para los clientes.
func (uc *InsuranceUsecase) Mine(actor *entity.User) ([]dto.InsuranceEnriched, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.InsuranceViewMine(actor) {
		return nil, errNoAutorizado()
	}
	list, err := uc.resolver.MyInsurances(actor)
	if err != nil {
		return nil, err
	}
	return uc.enrichAll(list)
}

// enrich resuelve las dos partes de la póliza con sus usuarios.
func (uc *InsuranceUsecase) enrich(insurance *entity.Insurance) (*dto.InsuranceEnriched, error) {
	out := &dto.InsuranceEnriched{Insurance: *dto.NewInsuranceResponse(insurance)}
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

func (uc *InsuranceUsecase) enrichAll(list []*entity.Insurance) ([]dto.InsuranceEnriched, error) {
	out := make([]dto.InsuranceEnriched, 0, len(list))
	for _, i := range list {
		e, err := uc.enrich(i)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}
