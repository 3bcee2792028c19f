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

type insuranceFixture struct {
	store *testutil.Store
	uc    *usecase.InsuranceUsecase

	admin, emp1, emp2, cli *entity.User
	e1, e2                 *entity.Employee
	c1                     *entity.Customer
	policy                 *entity.Insurance
}

func seedInsurance(t *testing.T) *insuranceFixture {
	t.Helper()
	s := testutil.NewStore()
	res := scope.NewResolver(s.Users, s.Employees, s.Customers, s.Insurances, s.Issues)
	f := &insuranceFixture{
		store: s,
		uc:    usecase.NewInsuranceUsecase(s.Insurances, s.Customers, s.Employees, s.Users, s.Issues, res),
	}

	newUser := func(dni, first, role string) *entity.User {
		u := &entity.User{DNI: dni, FirstName: first, LastName: "Test", Role: role, PasswordHash: "x"}
		require.NoError(t, s.Users.Create(u))
		return u
	}
	f.admin = newUser("99999999A", "Admin", entity.RoleAdmin)
	f.emp1 = newUser("11111111B", "Elena", entity.RoleEmployee)
	f.emp2 = newUser("22222222C", "Eduardo", entity.RoleEmployee)
	f.cli = newUser("33333333D", "Carla", entity.RoleCustomer)

	f.e1 = &entity.Employee{AuthID: f.emp1.ID}
	require.NoError(t, s.Employees.Create(f.e1))
	f.e2 = &entity.Employee{AuthID: f.emp2.ID}
	require.NoError(t, s.Employees.Create(f.e2))
	f.c1 = &entity.Customer{AuthID: f.cli.ID}
	require.NoError(t, s.Customers.Create(f.c1))

	f.policy = &entity.Insurance{SubjectType: "Coche", Description: "Todo riesgo", CustomerID: &f.c1.ID, EmployeeID: &f.e1.ID}
	require.NoError(t, s.Insurances.Create(f.policy))
	return f
}

func TestInsuranceCreate_EmpleadoSeAsignaASiMismo(t *testing.T) {
	f := seedInsurance(t)

	otroEmpleado := f.e2.ID
	out, err := f.uc.Create(f.emp1, dto.CreateInsuranceRequest{
		SubjectType: "Hogar",
		Description: "Cobertura básica",
		CustomerID:  &f.c1.ID,
		EmployeeID:  &otroEmpleado, // se ignora: un empleado no vende en nombre de otro
	})
	require.NoError(t, err)
	require.NotNil(t, out.Insurance.EmployeeID)
	assert.Equal(t, f.e1.ID, *out.Insurance.EmployeeID)
	require.NotNil(t, out.Employee, "la respuesta llega enriquecida con el comercial")
	assert.Equal(t, f.emp1.ID, out.Employee.User.ID)
}

func TestInsuranceCreate_AdminDebeIndicarEmpleado(t *testing.T) {
	f := seedInsurance(t)

	_, err := f.uc.Create(f.admin, dto.CreateInsuranceRequest{
		SubjectType: "Hogar", Description: "Cobertura básica", CustomerID: &f.c1.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, domain.ValidationFields(err), "employee_id")
}

func TestInsuranceCreate_ClienteInexistente_400(t *testing.T) {
	f := seedInsurance(t)
	fantasma := int64(404)

	_, err := f.uc.Create(f.emp1, dto.CreateInsuranceRequest{
		SubjectType: "Hogar", Description: "Cobertura básica", CustomerID: &fantasma,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
}

func TestInsuranceCreate_RamoDesconocido_422(t *testing.T) {
	f := seedInsurance(t)

	_, err := f.uc.Create(f.emp1, dto.CreateInsuranceRequest{
		SubjectType: "Submarinos", Description: "Cobertura básica", CustomerID: &f.c1.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestInsuranceUpdate_SoloDescripcion_RamoInmutable(t *testing.T) {
	f := seedInsurance(t)

	out, err := f.uc.Update(f.emp1, f.policy.ID, dto.UpdateInsuranceRequest{Description: "Todo riesgo ampliado"})
	require.NoError(t, err)
	assert.Equal(t, "Todo riesgo ampliado", out.Insurance.Description)
	assert.Equal(t, "Coche", out.Insurance.SubjectType, "el ramo no cambia nunca")

	stored, err := f.store.Insurances.GetByID(f.policy.ID)
	require.NoError(t, err)
	assert.False(t, stored.UpdatedAt.IsZero(), "el update sella updated_at antes de persistir")
}

func TestInsuranceUpdate_DeOtroEmpleado_403(t *testing.T) {
	f := seedInsurance(t)

	_, err := f.uc.Update(f.emp2, f.policy.ID, dto.UpdateInsuranceRequest{Description: "Intento ajeno"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestInsuranceDelete_IncidenciaAbiertaGanaALaPropiedad(t *testing.T) {
	f := seedInsurance(t)
	require.NoError(t, f.store.Issues.Create(&entity.Issue{
		InsuranceID: &f.policy.ID, Subject: "Siniestro", Status: entity.IssuePending,
	}))

	// Aunque emp2 tampoco es el dueño, la regla de integridad se evalúa antes:
	// 400, no 403.
	err := f.uc.Delete(f.emp2, f.policy.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
	assert.Equal(t, "No se puede eliminar una póliza con incidencias abiertas o pendientes.", err.Error())
}

func TestInsuranceDelete_DeOtroEmpleado_403(t *testing.T) {
	f := seedInsurance(t)

	err := f.uc.Delete(f.emp2, f.policy.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	assert.Equal(t, "No tienes permisos para eliminar esta póliza.", err.Error())
}

func TestInsuranceDelete_ConIncidenciasCerradas_OK(t *testing.T) {
	f := seedInsurance(t)
	require.NoError(t, f.store.Issues.Create(&entity.Issue{
		InsuranceID: &f.policy.ID, Subject: "Resuelto", Status: entity.IssueClosed,
	}))

	require.NoError(t, f.uc.Delete(f.emp1, f.policy.ID))
	got, _ := f.store.Insurances.GetByID(f.policy.ID)
	assert.Nil(t, got)
}

func TestInsuranceList_SoloAdmin(t *testing.T) {
	f := seedInsurance(t)

	_, err := f.uc.List(f.emp1)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	list, err := f.uc.List(f.admin)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInsuranceMine_Cliente(t *testing.T) {
	f := seedInsurance(t)

	mine, err := f.uc.Mine(f.cli)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Customer)
	assert.Equal(t, f.cli.ID, mine[0].Customer.User.ID)
}
