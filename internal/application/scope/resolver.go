// Package scope resuelve las consultas "mías": dado el actor autenticado,
// recorre el grafo de propiedad (User -> Employee|Customer -> Insurance ->
// Issue) y devuelve exactamente las filas que le pertenecen. La ausencia de
// ficha satélite en una ruta "mía" es un error de integridad de datos, no de
// autorización.
package scope

import (
	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

// EmployeeUser par empleado + su usuario.
type EmployeeUser struct {
	Employee *entity.Employee
	User     *entity.User
}

// CustomerUser par cliente + su usuario.
type CustomerUser struct {
	Customer *entity.Customer
	User     *entity.User
}

// CompanyDetail agregado de tres niveles del "show" de empresa: plantilla,
// pólizas vendidas por esa plantilla e incidencias de esas pólizas.
type CompanyDetail struct {
	Company    *entity.Company
	Employees  []EmployeeUser
	Insurances []*entity.Insurance
	Issues     []*entity.Issue
}

// EmployeeDetail agregado del detalle de empleado.
type EmployeeDetail struct {
	Employee   *entity.Employee
	User       *entity.User
	Insurances []*entity.Insurance
	Issues     []*entity.Issue
}

// CustomerDetail agregado del detalle de cliente.
type CustomerDetail struct {
	Customer   *entity.Customer
	User       *entity.User
	Insurances []*entity.Insurance
	Issues     []*entity.Issue
}

// Resolver implementa las proyecciones de visibilidad sobre los puertos de
// persistencia.
type Resolver struct {
	users      repository.UserRepository
	employees  repository.EmployeeRepository
	customers  repository.CustomerRepository
	insurances repository.InsuranceRepository
	issues     repository.IssueRepository
}

func NewResolver(
	users repository.UserRepository,
	employees repository.EmployeeRepository,
	customers repository.CustomerRepository,
	insurances repository.InsuranceRepository,
	issues repository.IssueRepository,
) *Resolver {
	return &Resolver{
		users:      users,
		employees:  employees,
		customers:  customers,
		insurances: insurances,
		issues:     issues,
	}
}

// ActorEmployee devuelve la ficha de empleado del actor. Si un usuario de
// plantilla no la tiene, los datos están rotos: 400, nunca 403.
func (r *Resolver) ActorEmployee(actor *entity.User) (*entity.Employee, error) {
	emp, err := r.employees.GetByAuthID(actor.ID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.Integrity("No se encontró un registro de empleado para este usuario.")
	}
	return emp, nil
}

// ActorCustomer devuelve la ficha de cliente del actor.
func (r *Resolver) ActorCustomer(actor *entity.User) (*entity.Customer, error) {
	cus, err := r.customers.GetByAuthID(actor.ID)
	if err != nil {
		return nil, err
	}
	if cus == nil {
		return nil, domain.Integrity("No se encontró un registro de cliente para este usuario.")
	}
	return cus, nil
}

// MyCompanyID resuelve la empresa del actor (Manager) a través de su ficha
// de empleado.
func (r *Resolver) MyCompanyID(actor *entity.User) (int64, error) {
	emp, err := r.ActorEmployee(actor)
	if err != nil {
		return 0, err
	}
	if emp.CompanyID == nil {
		return 0, domain.Integrity("No se encontró una empresa asociada a este empleado.")
	}
	return *emp.CompanyID, nil
}

// MyEmployees devuelve la plantilla de la empresa del actor, cada empleado
// con su usuario.
func (r *Resolver) MyEmployees(actor *entity.User) ([]EmployeeUser, error) {
	companyID, err := r.MyCompanyID(actor)
	if err != nil {
		return nil, err
	}
	emps, err := r.employees.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return r.joinEmployeeUsers(emps)
}

// MyCustomers proyecta los customer_id distintos de las pólizas vendidas por
// el empleado del actor y devuelve esos clientes con su usuario.
func (r *Resolver) MyCustomers(actor *entity.User) ([]CustomerUser, error) {
	emp, err := r.ActorEmployee(actor)
	if err != nil {
		return nil, err
	}
	ins, err := r.insurances.ListByEmployee(emp.ID)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]bool)
	var ids []int64
	for _, i := range ins {
		if i.CustomerID == nil || seen[*i.CustomerID] {
			continue
		}
		seen[*i.CustomerID] = true
		ids = append(ids, *i.CustomerID)
	}
	if len(ids) == 0 {
		return []CustomerUser{}, nil
	}
	customers, err := r.customers.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	return r.joinCustomerUsers(customers)
}

// MyInsurances filtra las pólizas por la parte que corresponde al rol del
// actor: como tomador si es Cliente, como comercial en el resto de casos.
func (r *Resolver) MyInsurances(actor *entity.User) ([]*entity.Insurance, error) {
	if actor.Role == entity.RoleCustomer {
		cus, err := r.ActorCustomer(actor)
		if err != nil {
			return nil, err
		}
		return r.insurances.ListByCustomer(cus.ID)
	}
	emp, err := r.ActorEmployee(actor)
	if err != nil {
		return nil, err
	}
	return r.insurances.ListByEmployee(emp.ID)
}

// MyIssues une las incidencias de todas las pólizas del actor.
func (r *Resolver) MyIssues(actor *entity.User) ([]*entity.Issue, error) {
	ins, err := r.MyInsurances(actor)
	if err != nil {
		return nil, err
	}
	ids := insuranceIDs(ins)
	if len(ids) == 0 {
		return []*entity.Issue{}, nil
	}
	return r.issues.ListByInsurances(ids)
}

// IsMine comprueba si la póliza pertenece al actor: por customer_id si es
// Cliente, por employee_id en el resto de casos.
func (r *Resolver) IsMine(actor *entity.User, ins *entity.Insurance) (bool, error) {
	if actor.Role == entity.RoleCustomer {
		cus, err := r.ActorCustomer(actor)
		if err != nil {
			return false, err
		}
		return ins.CustomerID != nil && *ins.CustomerID == cus.ID, nil
	}
	emp, err := r.ActorEmployee(actor)
	if err != nil {
		return false, err
	}
	return ins.EmployeeID != nil && *ins.EmployeeID == emp.ID, nil
}

// IsMyIssue aplica IsMine a la póliza de la incidencia. Una incidencia
// huérfana (sin póliza) no es de nadie.
func (r *Resolver) IsMyIssue(actor *entity.User, issue *entity.Issue) (bool, error) {
	if issue.InsuranceID == nil {
		return false, nil
	}
	ins, err := r.insurances.GetByID(*issue.InsuranceID)
	if err != nil {
		return false, err
	}
	if ins == nil {
		return false, nil
	}
	return r.IsMine(actor, ins)
}

// CompanyDetail monta el agregado del "show" de empresa.
func (r *Resolver) CompanyDetail(company *entity.Company) (*CompanyDetail, error) {
	emps, err := r.employees.ListByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	pairs, err := r.joinEmployeeUsers(emps)
	if err != nil {
		return nil, err
	}
	var insurances []*entity.Insurance
	for _, e := range emps {
		ins, err := r.insurances.ListByEmployee(e.ID)
		if err != nil {
			return nil, err
		}
		insurances = append(insurances, ins...)
	}
	issues, err := r.issuesOf(insurances)
	if err != nil {
		return nil, err
	}
	return &CompanyDetail{
		Company:    company,
		Employees:  pairs,
		Insurances: insurances,
		Issues:     issues,
	}, nil
}

// EmployeeDetail monta el agregado de detalle de empleado.
func (r *Resolver) EmployeeDetail(emp *entity.Employee) (*EmployeeDetail, error) {
	user, err := r.users.GetByID(emp.AuthID)
	if err != nil {
		return nil, err
	}
	insurances, err := r.insurances.ListByEmployee(emp.ID)
	if err != nil {
		return nil, err
	}
	issues, err := r.issuesOf(insurances)
	if err != nil {
		return nil, err
	}
	return &EmployeeDetail{
		Employee:   emp,
		User:       user,
		Insurances: insurances,
		Issues:     issues,
	}, nil
}

// CustomerDetail monta el detalle de cliente visto por el actor. Admin ve
// todas las pólizas del cliente; un comercial solo si el cliente es suyo, y
// entonces únicamente las pólizas que él le ha vendido.
func (r *Resolver) CustomerDetail(actor *entity.User, cus *entity.Customer) (*CustomerDetail, error) {
	var insurances []*entity.Insurance
	if actor.Role == entity.RoleAdmin {
		ins, err := r.insurances.ListByCustomer(cus.ID)
		if err != nil {
			return nil, err
		}
		insurances = ins
	} else {
		emp, err := r.ActorEmployee(actor)
		if err != nil {
			return nil, err
		}
		ok, err := r.insurances.ExistsForEmployeeAndCustomer(emp.ID, cus.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.Forbidden("No tienes permiso. No es cliente tuyo.")
		}
		all, err := r.insurances.ListByCustomer(cus.ID)
		if err != nil {
			return nil, err
		}
		for _, i := range all {
			if i.EmployeeID != nil && *i.EmployeeID == emp.ID {
				insurances = append(insurances, i)
			}
		}
	}
	user, err := r.users.GetByID(cus.AuthID)
	if err != nil {
		return nil, err
	}
	issues, err := r.issuesOf(insurances)
	if err != nil {
		return nil, err
	}
	return &CustomerDetail{
		Customer:   cus,
		User:       user,
		Insurances: insurances,
		Issues:     issues,
	}, nil
}

func (r *Resolver) joinEmployeeUsers(emps []*entity.Employee) ([]EmployeeUser, error) {
	out := make([]EmployeeUser, 0, len(emps))
	for _, e := range emps {
		u, err := r.users.GetByID(e.AuthID)
		if err != nil {
			return nil, err
		}
		out = append(out, EmployeeUser{Employee: e, User: u})
	}
	return out, nil
}

func (r *Resolver) joinCustomerUsers(customers []*entity.Customer) ([]CustomerUser, error) {
	out := make([]CustomerUser, 0, len(customers))
	for _, c := range customers {
		u, err := r.users.GetByID(c.AuthID)
		if err != nil {
			return nil, err
		}
		out = append(out, CustomerUser{Customer: c, User: u})
	}
	return out, nil
}

func (r *Resolver) issuesOf(insurances []*entity.Insurance) ([]*entity.Issue, error) {
	ids := insuranceIDs(insurances)
	if len(ids) == 0 {
		return []*entity.Issue{}, nil
	}
	return r.issues.ListByInsurances(ids)
}

func insuranceIDs(list []*entity.Insurance) []int64 {
	ids := make([]int64, 0, len(list))
	for _, i := range list {
		ids = append(ids, i.ID)
	}
	return ids
}
