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

type issueFixture struct {
	store *testutil.Store
	uc    *usecase.IssueUsecase

	admin, cli, emp *entity.User
	c1              *entity.Customer
	e1              *entity.Employee
	p1, p2          *entity.Insurance
}

func seedIssue(t *testing.T) *issueFixture {
	t.Helper()
	s := testutil.NewStore()
	res := scope.NewResolver(s.Users, s.Employees, s.Customers, s.Insurances, s.Issues)
	f := &issueFixture{
		store: s,
		uc:    usecase.NewIssueUsecase(s.Issues, s.Insurances, s.Customers, s.Employees, s.Users, res),
	}

	newUser := func(dni, first, role string) *entity.User {
		u := &entity.User{DNI: dni, FirstName: first, LastName: "Test", Role: role, PasswordHash: "x"}
		require.NoError(t, s.Users.Create(u))
		return u
	}
	f.admin = newUser("99999999A", "Admin", entity.RoleAdmin)
	f.cli = newUser("33333333D", "Carla", entity.RoleCustomer)
	f.emp = newUser("11111111B", "Elena", entity.RoleEmployee)

	f.c1 = &entity.Customer{AuthID: f.cli.ID}
	require.NoError(t, s.Customers.Create(f.c1))
	f.e1 = &entity.Employee{AuthID: f.emp.ID}
	require.NoError(t, s.Employees.Create(f.e1))

	f.p1 = &entity.Insurance{SubjectType: "Coche", Description: "Todo riesgo", CustomerID: &f.c1.ID, EmployeeID: &f.e1.ID}
	require.NoError(t, s.Insurances.Create(f.p1))
	f.p2 = &entity.Insurance{SubjectType: "Hogar", Description: "Continente y contenido", CustomerID: &f.c1.ID, EmployeeID: &f.e1.ID}
	require.NoError(t, s.Insurances.Create(f.p2))
	return f
}

// Sin estado explícito la incidencia nace Pendiente.
func TestIssueCreate_EstadoPorDefecto(t *testing.T) {
	f := seedIssue(t)

	out, err := f.uc.Create(f.cli, dto.CreateIssueRequest{
		InsuranceID: &f.p1.ID,
		Subject:     "El parte no llega",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.IssuePending, out.Issue.Status)
	require.NotNil(t, out.Insurance, "la respuesta llega enriquecida con la póliza")
	assert.Equal(t, f.p1.ID, out.Insurance.ID)
}

func TestIssueCreate_EstadoDesconocido_422(t *testing.T) {
	f := seedIssue(t)

	_, err := f.uc.Create(f.cli, dto.CreateIssueRequest{
		InsuranceID: &f.p1.ID,
		Subject:     "El parte no llega",
		Status:      "Archivada",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, domain.ValidationFields(err), "status")
}

func TestIssueCreate_PolizaInexistente_400(t *testing.T) {
	f := seedIssue(t)
	fantasma := int64(404)

	_, err := f.uc.Create(f.admin, dto.CreateIssueRequest{
		InsuranceID: &fantasma,
		Subject:     "Incidencia huérfana",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
}

// Un Empleado no abre incidencias; eso es cosa del cliente (o de Admin).
func TestIssueCreate_EmpleadoNoPuede(t *testing.T) {
	f := seedIssue(t)

	_, err := f.uc.Create(f.emp, dto.CreateIssueRequest{
		InsuranceID: &f.p1.ID,
		Subject:     "No debería poder",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

// El update puede reasignar la incidencia a otra póliza existente.
func TestIssueUpdate_ReasignaPoliza(t *testing.T) {
	f := seedIssue(t)
	issue := &entity.Issue{InsuranceID: &f.p1.ID, Subject: "Siniestro sin tramitar", Status: entity.IssueOpen}
	require.NoError(t, f.store.Issues.Create(issue))

	out, err := f.uc.Update(f.admin, issue.ID, dto.UpdateIssueRequest{
		Subject:     "Siniestro sin tramitar",
		Status:      entity.IssueClosed,
		InsuranceID: &f.p2.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.IssueClosed, out.Issue.Status)
	require.NotNil(t, out.Issue.InsuranceID)
	assert.Equal(t, f.p2.ID, *out.Issue.InsuranceID)

	fantasma := int64(404)
	_, err = f.uc.Update(f.admin, issue.ID, dto.UpdateIssueRequest{
		Subject:     "Siniestro sin tramitar",
		Status:      entity.IssueClosed,
		InsuranceID: &fantasma,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
}

// El borrado es exclusivo de Admin; el cliente dueño tampoco puede.
func TestIssueDelete_SoloAdmin(t *testing.T) {
	f := seedIssue(t)
	issue := &entity.Issue{InsuranceID: &f.p1.ID, Subject: "Siniestro sin tramitar", Status: entity.IssueOpen}
	require.NoError(t, f.store.Issues.Create(issue))

	err := f.uc.Delete(f.cli, issue.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	require.NoError(t, f.uc.Delete(f.admin, issue.ID))
	got, err := f.store.Issues.GetByID(issue.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
