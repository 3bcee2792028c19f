package usecase

import (
	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/policy"
	"github.com/correduria/backoffice/internal/application/scope"
	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

// EmployeeUsecase gestiona las fichas de empleado.
type EmployeeUsecase struct {
	employees  repository.EmployeeRepository
	users      repository.UserRepository
	insurances repository.InsuranceRepository
	resolver   *scope.Resolver
}

func NewEmployeeUsecase(
	employees repository.EmployeeRepository,
	users repository.UserRepository,
	insurances repository.InsuranceRepository,
	resolver *scope.Resolver,
) *EmployeeUsecase {
	return &EmployeeUsecase{
		employees:  employees,
		users:      users,
		insurances: insurances,
		resolver:   resolver,
	}
}

// List devuelve todos los empleados con su usuario (solo Admin).
func (uc *EmployeeUsecase) List(actor *entity.User) ([]dto.EmployeeWithUser, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.EmployeeViewAll(actor) {
		return nil, errNoAutorizado()
	}
	emps, err := uc.employees.List()
	if err != nil {
		return nil, err
	}
	return uc.withUsers(emps)
}

// Create crea la ficha de empleado para un usuario de plantilla ya existente.
func (uc *EmployeeUsecase) Create(actor *entity.User, req dto.CreateEmployeeRequest) (*dto.EmployeeWithUser, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.EmployeeCreate(actor) {
		return nil, errNoAutorizado()
	}
	user, err := uc.users.GetByID(req.AuthID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("Usuario no encontrado")
	}
	if !user.IsStaff() {
		return nil, domain.Integrity("El usuario no tiene un rol de plantilla.")
	}
	existing, err := uc.employees.GetByAuthID(user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Integrity("Este usuario ya tiene una ficha de empleado.")
	}
	if user.Role == entity.RoleManager && req.CompanyID != nil {
		exists, err := uc.employees.ManagerExists(*req.CompanyID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.Integrity("Ya existe un manager para esta compañía.")
		}
	}
	employee := &entity.Employee{AuthID: req.AuthID, CompanyID: req.CompanyID}
	if err := uc.employees.Create(employee); err != nil {
		return nil, err
	}
	out := dto.NewEmployeeWithUser(employee, user)
	return &out, nil
}

// Show devuelve un empleado con su usuario.
func (uc *EmployeeUsecase) Show(actor *entity.User, id int64) (*dto.EmployeeWithUser, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.EmployeeView(actor) {
		return nil, errNoAutorizado()
	}
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NotFound("Empleado no encontrado")
	}
	user, err := uc.users.GetByID(employee.AuthID)
	if err != nil {
		return nil, err
	}
	out := dto.NewEmployeeWithUser(employee, user)
	return &out, nil
}

// Detail devuelve el agregado empleado + usuario + pólizas + incidencias.
// Un Empleado solo puede pedir el suyo propio.
func (uc *EmployeeUsecase) Detail(actor *entity.User, id int64) (*dto.EmployeeDetailResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.EmployeeView(actor) {
		return nil, errNoAutorizado()
	}
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NotFound("Empleado no encontrado")
	}
	if actor.Role == entity.RoleEmployee && employee.AuthID != actor.ID {
		return nil, errNoAutorizado()
	}
	detail, err := uc.resolver.EmployeeDetail(employee)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeDetailResponse{
		Employee:   *dto.NewEmployeeResponse(detail.Employee),
		User:       dto.NewUserResponse(detail.User),
		Insurances: dto.NewInsuranceList(detail.Insurances),
		Issues:     dto.NewIssueList(detail.Issues),
	}, nil
}

// Update mueve al empleado de empresa (Manager y Admin).
func (uc *EmployeeUsecase) Update(actor *entity.User, id int64, req dto.UpdateEmployeeRequest) (*dto.EmployeeWithUser, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.EmployeeUpdate(actor) {
		return nil, errNoAutorizado()
	}
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NotFound("Empleado no encontrado")
	}
	user, err := uc.users.GetByID(employee.AuthID)
	if err != nil {
		return nil, err
	}
	// company_id omitido = sin cambios; nunca desvincula en silencio
	if req.CompanyID != nil {
		if user != nil && user.Role == entity.RoleManager {
			if employee.CompanyID == nil || *employee.CompanyID != *req.CompanyID {
				exists, err := uc.employees.ManagerExists(*req.CompanyID)
				if err != nil {
					return nil, err
				}
				if exists {
					return nil, domain.Integrity("Ya existe un manager para esta compañía.")
				}
			}
		}
		employee.CompanyID = req.CompanyID
	}
	if err := uc.employees.Update(employee); err != nil {
		return nil, err
	}
	out := dto.NewEmployeeWithUser(employee, user)
	return &out, nil
}

// Delete elimina una ficha de empleado (solo Admin); se bloquea si tiene
// pólizas vendidas.
func (uc *EmployeeUsecase) Delete(actor *entity.User, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !policy.EmployeeDelete(actor) {
		return errNoAutorizado()
	}
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.NotFound("Empleado no encontrado")
	}
	n, err := uc.insurances.CountByEmployee(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Integrity("No se puede eliminar un empleado con seguros asociados.")
	}
	return uc.employees.Delete(id)
}

// Mine devuelve la plantilla de la empresa del Manager autenticado.
func (uc *EmployeeUsecase) Mine(actor *entity.User) ([]dto.EmployeeWithUser, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.EmployeeViewMine(actor) {
		return nil, errNoAutorizado()
	}
	pairs, err := uc.resolver.MyEmployees(actor)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeWithUser, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, dto.NewEmployeeWithUser(pair.Employee, pair.User))
	}
	return out, nil
}

func (uc *EmployeeUsecase) withUsers(emps []*entity.Employee) ([]dto.EmployeeWithUser, error) {
	out := make([]dto.EmployeeWithUser, 0, len(emps))
	for _, e := range emps {
		u, err := uc.users.GetByID(e.AuthID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.NewEmployeeWithUser(e, u))
	}
	return out, nil
}
