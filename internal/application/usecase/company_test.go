package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/scope"
	"github.com/correduria/backoffice/internal/application/usecase"
	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/testutil"
)

func newCompanyUC(s *testutil.Store) *usecase.CompanyUsecase {
	res := scope.NewResolver(s.Users, s.Employees, s.Customers, s.Insurances, s.Issues)
	return usecase.NewCompanyUsecase(s.Companies, s.Employees, res)
}

func TestCompanyDelete_ConPlantilla_400(t *testing.T) {
	s := testutil.NewStore()
	uc := newCompanyUC(s)
	admin := seedAdmin(t, s)

	company := &entity.Company{Name: "Correduría Centro"}
	require.NoError(t, s.Companies.Create(company))
	emp := &entity.User{DNI: "11111111B", FirstName: "Elena", LastName: "Ruiz", Role: entity.RoleEmployee, PasswordHash: "x"}
	require.NoError(t, s.Users.Create(emp))
	require.NoError(t, s.Employees.Create(&entity.Employee{AuthID: emp.ID, CompanyID: &company.ID}))

	err := uc.Delete(admin, company.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
}

func TestCompanyShow_ManagerDeOtraEmpresa_403(t *testing.T) {
	s := testutil.NewStore()
	uc := newCompanyUC(s)

	mia := &entity.Company{Name: "Correduría Norte"}
	require.NoError(t, s.Companies.Create(mia))
	ajena := &entity.Company{Name: "Correduría Sur"}
	require.NoError(t, s.Companies.Create(ajena))

	manager := &entity.User{DNI: "22222222C", FirstName: "Marta", LastName: "Gil", Role: entity.RoleManager, PasswordHash: "x"}
	require.NoError(t, s.Users.Create(manager))
	require.NoError(t, s.Employees.Create(&entity.Employee{AuthID: manager.ID, CompanyID: &mia.ID}))

	_, err := uc.Show(manager, mia.ID)
	require.NoError(t, err, "el manager ve el detalle de su propia empresa")

	_, err = uc.Show(manager, ajena.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestCompanyMyCompanyID_RoundTripYRoles(t *testing.T) {
	s := testutil.NewStore()
	uc := newCompanyUC(s)

	company := &entity.Company{Name: "Correduría Oeste"}
	require.NoError(t, s.Companies.Create(company))
	manager := &entity.User{DNI: "33333333D", FirstName: "Marta", LastName: "Gil", Role: entity.RoleManager, PasswordHash: "x"}
	require.NoError(t, s.Users.Create(manager))
	require.NoError(t, s.Employees.Create(&entity.Employee{AuthID: manager.ID, CompanyID: &company.ID}))

	out, err := uc.MyCompanyID(manager)
	require.NoError(t, err)
	assert.Equal(t, company.ID, out.CompanyID)

	admin := seedAdmin(t, s)
	_, err = uc.MyCompanyID(admin)
	assert.True(t, errors.Is(err, domain.ErrForbidden), "get-my-company-id es solo para Manager")
}

func TestCompanyCreate_Validacion(t *testing.T) {
	s := testutil.NewStore()
	uc := newCompanyUC(s)
	admin := seedAdmin(t, s)

	_, err := uc.Create(admin, dto.CreateCompanyRequest{Name: "abc"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, domain.ValidationFields(err), "name")
}

// La empresa llega a la persistencia con los sellos de tiempo puestos.
func TestCompanyCreate_SellaTimestamps(t *testing.T) {
	s := testutil.NewStore()
	uc := newCompanyUC(s)
	admin := seedAdmin(t, s)

	out, err := uc.Create(admin, dto.CreateCompanyRequest{Name: "Correduría Norte"})
	require.NoError(t, err)

	stored, err := s.Companies.GetByID(out.ID)
	require.NoError(t, err)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestCompanyList_VisibleParaTodosLosRoles(t *testing.T) {
	s := testutil.NewStore()
	uc := newCompanyUC(s)
	require.NoError(t, s.Companies.Create(&entity.Company{Name: "Correduría Única"}))

	cli := &entity.User{DNI: "44444444E", FirstName: "Carla", LastName: "Paz", Role: entity.RoleCustomer, PasswordHash: "x"}
	require.NoError(t, s.Users.Create(cli))

	list, err := uc.List(cli)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
