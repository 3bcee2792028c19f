package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/scope"
	"github.com/correduria/backoffice/internal/application/usecase"
	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/testutil"
)

func newUserUC(s *testutil.Store) *usecase.UserUsecase {
	res := scope.NewResolver(s.Users, s.Employees, s.Customers, s.Insurances, s.Issues)
	return usecase.NewUserUsecase(s.Users, s.Employees, s.Customers, s.Insurances, res, s)
}

func seedAdmin(t *testing.T, s *testutil.Store) *entity.User {
	t.Helper()
	admin := &entity.User{DNI: "99999999A", FirstName: "Admin", LastName: "Root", Role: entity.RoleAdmin, PasswordHash: "x"}
	require.NoError(t, s.Users.Create(admin))
	return admin
}

func strp(s string) *string { return &s }

func TestUserCreate_ClienteTransaccional(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)
	admin := seedAdmin(t, s)

	out, err := uc.Create(context.Background(), admin, dto.CreateUserRequest{
		DNI:         "12345678z",
		FirstName:   "Clara",
		LastName:    "López",
		Email:       strp("clara@example.com"),
		Role:        entity.RoleCustomer,
		PhoneNumber: strp("600111222"),
		Address:     strp("Calle Mayor 1"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Customer, "el alta de un Cliente crea su ficha satélite")
	assert.Nil(t, out.Employee)
	assert.Equal(t, "12345678Z", out.User.DNI, "el DNI se normaliza a mayúsculas")

	// La contraseña inicial es el propio DNI.
	stored, err := s.Users.GetByID(out.User.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("12345678Z")))
}

// Los sellos de tiempo los pone el caso de uso antes de persistir; el INSERT
// escribe las columnas tal cual, así que un cero aquí acabaría en la tabla.
func TestUserCreateUpdate_SellaTimestamps(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)
	admin := seedAdmin(t, s)

	out, err := uc.Create(context.Background(), admin, dto.CreateUserRequest{
		DNI: "12345678Z", FirstName: "Clara", LastName: "López",
		Role: entity.RoleCustomer, PhoneNumber: strp("600111222"), Address: strp("Calle Mayor 1"),
	})
	require.NoError(t, err)

	stored, err := s.Users.GetByID(out.User.ID)
	require.NoError(t, err)
	assert.False(t, stored.CreatedAt.IsZero(), "created_at llega relleno a la persistencia")
	assert.False(t, stored.UpdatedAt.IsZero())
	created := stored.CreatedAt

	time.Sleep(time.Millisecond)
	_, err = uc.Update(admin, out.User.ID, dto.UpdateUserRequest{
		DNI: "12345678Z", FirstName: "Clara", LastName: "García",
		Role: entity.RoleCustomer, PhoneNumber: strp("600111222"), Address: strp("Calle Mayor 1"),
	})
	require.NoError(t, err)

	stored, err = s.Users.GetByID(out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored.CreatedAt, "el update no toca created_at")
	assert.True(t, stored.UpdatedAt.After(created), "el update avanza updated_at")
}

func TestUserCreate_FalloDeTransaccion_NoDejaUsuarioAMedias(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)
	admin := seedAdmin(t, s)
	s.FailWith = errors.New("tx rota")

	_, err := uc.Create(context.Background(), admin, dto.CreateUserRequest{
		DNI: "12345678Z", FirstName: "Clara", LastName: "López",
		Role: entity.RoleCustomer, PhoneNumber: strp("600111222"), Address: strp("Calle Mayor 1"),
	})
	require.Error(t, err)
	users, _ := s.Users.List()
	assert.Len(t, users, 1, "solo debe quedar el admin del seed")
}

func TestUserCreate_SegundoManagerMismaEmpresa_400(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)
	admin := seedAdmin(t, s)

	company := &entity.Company{Name: "Correduría Sur"}
	require.NoError(t, s.Companies.Create(company))

	_, err := uc.Create(context.Background(), admin, dto.CreateUserRequest{
		DNI: "11111111B", FirstName: "Marta", LastName: "Gil",
		Role: entity.RoleManager, CompanyID: &company.ID,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), admin, dto.CreateUserRequest{
		DNI: "22222222C", FirstName: "Mario", LastName: "Gil",
		Role: entity.RoleManager, CompanyID: &company.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
	assert.Equal(t, "Ya existe un manager para esta compañía.", err.Error())
}

func TestUserCreate_EmpleadoDaDeAltaEnSuPropiaEmpresa(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)

	company := &entity.Company{Name: "Correduría Este"}
	require.NoError(t, s.Companies.Create(company))
	actor := &entity.User{DNI: "33333333D", FirstName: "Elena", LastName: "Ruiz", Role: entity.RoleEmployee, PasswordHash: "x"}
	require.NoError(t, s.Users.Create(actor))
	require.NoError(t, s.Employees.Create(&entity.Employee{AuthID: actor.ID, CompanyID: &company.ID}))

	otra := int64(999)
	out, err := uc.Create(context.Background(), actor, dto.CreateUserRequest{
		DNI: "44444444E", FirstName: "Pablo", LastName: "Ortiz",
		Role: entity.RoleEmployee, CompanyID: &otra, // se ignora: no elige empresa
	})
	require.NoError(t, err)
	require.NotNil(t, out.Employee)
	require.NotNil(t, out.Employee.CompanyID)
	assert.Equal(t, company.ID, *out.Employee.CompanyID)
}

func TestUserCreate_DNIInvalido_422(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)
	admin := seedAdmin(t, s)

	_, err := uc.Create(context.Background(), admin, dto.CreateUserRequest{
		DNI: "123", FirstName: "X", LastName: "Y", Role: "Jefe",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	fields := domain.ValidationFields(err)
	assert.Contains(t, fields, "dni")
	assert.Contains(t, fields, "role")
	assert.Contains(t, fields, "first_name")
}

func TestUserCreate_DNIDuplicado_409(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)
	admin := seedAdmin(t, s)

	req := dto.CreateUserRequest{
		DNI: "12345678Z", FirstName: "Clara", LastName: "López",
		Role: entity.RoleCustomer, PhoneNumber: strp("600111222"), Address: strp("Calle Mayor 1"),
	}
	_, err := uc.Create(context.Background(), admin, req)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), admin, req)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestUserUpdate_CambioDeRol_SiempreRechazado(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)
	admin := seedAdmin(t, s)

	out, err := uc.Create(context.Background(), admin, dto.CreateUserRequest{
		DNI: "12345678Z", FirstName: "Clara", LastName: "López",
		Role: entity.RoleCustomer, PhoneNumber: strp("600111222"), Address: strp("Calle Mayor 1"),
	})
	require.NoError(t, err)

	_, err = uc.Update(admin, out.User.ID, dto.UpdateUserRequest{
		DNI: "12345678Z", FirstName: "Clara", LastName: "López",
		Role: entity.RoleEmployee,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIntegrity), "ni siquiera el Admin cambia roles")
	assert.Equal(t, "No se puede cambiar el rol de un usuario", err.Error())
}

func TestUserDelete_AdminObjetivo_404(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)
	admin := seedAdmin(t, s)
	otro := &entity.User{DNI: "88888888B", FirstName: "Ana", LastName: "Root", Role: entity.RoleAdmin, PasswordHash: "x"}
	require.NoError(t, s.Users.Create(otro))

	err := uc.Delete(admin, otro.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "un Admin no es un objetivo de borrado válido")
}

func TestUserDelete_ConPolizas_400(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)
	admin := seedAdmin(t, s)

	cli := &entity.User{DNI: "12345678Z", FirstName: "Clara", LastName: "López", Role: entity.RoleCustomer, PasswordHash: "x"}
	require.NoError(t, s.Users.Create(cli))
	customer := &entity.Customer{AuthID: cli.ID}
	require.NoError(t, s.Customers.Create(customer))
	require.NoError(t, s.Insurances.Create(&entity.Insurance{SubjectType: "Vida", Description: "Básica", CustomerID: &customer.ID}))

	err := uc.Delete(admin, cli.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
	assert.Equal(t, "No se puede eliminar el usuario porque tiene pólizas asociadas", err.Error())
}

func TestUserList_SoloAdmin(t *testing.T) {
	s := testutil.NewStore()
	uc := newUserUC(s)
	empleado := &entity.User{DNI: "55555555F", FirstName: "Eva", LastName: "Mora", Role: entity.RoleEmployee, PasswordHash: "x"}
	require.NoError(t, s.Users.Create(empleado))

	_, err := uc.List(empleado)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	_, err = uc.List(nil)
	assert.True(t, errors.Is(err, domain.ErrNotAuthenticated), "sin actor el fallo es 401, no 403")
}
