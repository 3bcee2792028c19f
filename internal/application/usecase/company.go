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

// CompanyUsecase gestiona empresas y el agregado de detalle de tres niveles.
type CompanyUsecase struct {
	companies repository.CompanyRepository
	employees repository.EmployeeRepository
	resolver  *scope.Resolver
}

func NewCompanyUsecase(
	companies repository.CompanyRepository,
	employees repository.EmployeeRepository,
	resolver *scope.Resolver,
) *CompanyUsecase {
	return &CompanyUsecase{companies: companies, employees: employees, resolver: resolver}
}

// List devuelve todas las empresas; el listado es visible para todos los roles.
func (uc *CompanyUsecase) List(actor *entity.User) ([]dto.CompanyResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.CompanyViewAll(actor) {
		return nil, errNoAutorizado()
	}
	companies, err := uc.companies.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, *dto.NewCompanyResponse(c))
	}
	return out, nil
}

func validateCompany(req dto.CreateCompanyRequest) error {
	fe := domain.FieldErrors{}
	checkLen(fe, "name", req.Name, 5, 50)
	checkOptionalLen(fe, "description", req.Description, 5, 255)
	checkPhone(fe, "phone_number", req.PhoneNumber, false)
	return finish(fe)
}

// Create da de alta una empresa (solo Admin).
func (uc *CompanyUsecase) Create(actor *entity.User, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.CompanyCreate(actor) {
		return nil, errNoAutorizado()
	}
	if err := validateCompany(req); err != nil {
		return nil, err
	}
	now := time.Now()
	company := &entity.Company{
		Name:        req.Name,
		Description: req.Description,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.companies.Create(company); err != nil {
		return nil, err
	}
	return dto.NewCompanyResponse(company), nil
}

// Show devuelve el detalle de una empresa: Admin, o el Manager de esa empresa.
func (uc *CompanyUsecase) Show(actor *entity.User, id int64) (*dto.CompanyDetailResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("Empresa no encontrada")
	}
	emp, err := uc.employees.GetByAuthID(actor.ID)
	if err != nil {
		return nil, err
	}
	if !policy.CompanyViewDetail(actor, emp, company.ID) {
		return nil, errNoAutorizado()
	}
	detail, err := uc.resolver.CompanyDetail(company)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyDetailResponse{
		Company:    *dto.NewCompanyResponse(company),
		Employees:  make([]dto.EmployeeWithUser, 0, len(detail.Employees)),
		Insurances: dto.NewInsuranceList(detail.Insurances),
		Issues:     dto.NewIssueList(detail.Issues),
	}
	for _, pair := range detail.Employees {
		out.Employees = append(out.Employees, dto.NewEmployeeWithUser(pair.Employee, pair.User))
	}
	return out, nil
}

// Update modifica una empresa: Admin, o el Manager de esa empresa.
func (uc *CompanyUsecase) Update(actor *entity.User, id int64, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("Empresa no encontrada")
	}
	emp, err := uc.employees.GetByAuthID(actor.ID)
	if err != nil {
		return nil, err
	}
	if !policy.CompanyUpdate(actor, emp, company.ID) {
		return nil, errNoAutorizado()
	}
	if err := validateCompany(req); err != nil {
		return nil, err
	}
	company.Name = req.Name
	company.Description = req.Description
	company.PhoneNumber = req.PhoneNumber
	company.UpdatedAt = time.Now()
	if err := uc.companies.Update(company); err != nil {
		return nil, err
	}
	return dto.NewCompanyResponse(company), nil
}

// Delete elimina una empresa (solo Admin); se bloquea mientras tenga plantilla.
func (uc *CompanyUsecase) Delete(actor *entity.User, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !policy.CompanyDelete(actor) {
		return errNoAutorizado()
	}
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.NotFound("Empresa no encontrada")
	}
	n, err := uc.employees.CountByCompany(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Integrity("No se puede eliminar una empresa con empleados asociados.")
	}
	return uc.companies.Delete(id)
}

// MyCompanyID devuelve la empresa del Manager autenticado.
func (uc *CompanyUsecase) MyCompanyID(actor *entity.User) (*dto.MyCompanyIDResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.CompanyViewMyCompanyID(actor) {
		return nil, errNoAutorizado()
	}
	id, err := uc.resolver.MyCompanyID(actor)
	if err != nil {
		return nil, err
	}
	return &dto.MyCompanyIDResponse{CompanyID: id}, nil
}
