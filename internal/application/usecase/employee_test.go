package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/scope"
	"github.com/correduria/backoffice/internal/application/usecase"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/testutil"
)

func newEmployeeUC(s *testutil.Store) *usecase.EmployeeUsecase {
	res := scope.NewResolver(s.Users, s.Employees, s.Customers, s.Insurances, s.Issues)
	return usecase.NewEmployeeUsecase(s.Employees, s.Users, s.Insurances, res)
}

// Un PUT sin company_id deja al empleado donde estaba; solo el campo
// presente mueve de empresa.
func TestEmployeeUpdate_SinCompanyID_NoDesvincula(t *testing.T) {
	s := testutil.NewStore()
	uc := newEmployeeUC(s)
	admin := seedAdmin(t, s)

	co1 := &entity.Company{Name: "Correduría Norte"}
	require.NoError(t, s.Companies.Create(co1))
	co2 := &entity.Company{Name: "Correduría Sur"}
	require.NoError(t, s.Companies.Create(co2))

	u := &entity.User{DNI: "11111111B", FirstName: "Elena", LastName: "Gil", Role: entity.RoleEmployee, PasswordHash: "x"}
	require.NoError(t, s.Users.Create(u))
	emp := &entity.Employee{AuthID: u.ID, CompanyID: &co1.ID}
	require.NoError(t, s.Employees.Create(emp))

	out, err := uc.Update(admin, emp.ID, dto.UpdateEmployeeRequest{})
	require.NoError(t, err)
	require.NotNil(t, out.Employee.CompanyID)
	assert.Equal(t, co1.ID, *out.Employee.CompanyID)

	out, err = uc.Update(admin, emp.ID, dto.UpdateEmployeeRequest{CompanyID: &co2.ID})
	require.NoError(t, err)
	require.NotNil(t, out.Employee.CompanyID)
	assert.Equal(t, co2.ID, *out.Employee.CompanyID)

	stored, err := s.Employees.GetByID(emp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CompanyID)
	assert.Equal(t, co2.ID, *stored.CompanyID)
}
