package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/correduria/backoffice/internal/application/auth"
	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/testutil"
)

const testSecret = "secreto-de-test-no-usar-en-produccion"

func newAuth(t *testing.T) (*auth.Usecase, *testutil.Store, *entity.User) {
	t.Helper()
	s := testutil.NewStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("12345678Z"), bcrypt.MinCost)
	require.NoError(t, err)
	email := "clara@example.com"
	user := &entity.User{
		DNI: "12345678Z", FirstName: "Clara", LastName: "López",
		Email: &email, PasswordHash: string(hash), Role: entity.RoleCustomer,
	}
	require.NoError(t, s.Users.Create(user))
	return auth.NewUsecase(s.Users, s.Tokens, testSecret, "test", 7), s, user
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, s, _ := newAuth(t)

	out, err := uc.Login(dto.LoginRequest{Email: "clara@example.com", Password: "12345678Z", DeviceName: "móvil"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, entity.RoleCustomer, out.Role)
	assert.Equal(t, "Clara López", out.Username)
	assert.NotEmpty(t, out.AccessToken)
	assert.Len(t, s.Tokens.Rows, 1, "cada login deja una sesión registrada")
	assert.Equal(t, "móvil", s.Tokens.Rows[0].Name)
}

func TestLogin_PasswordIncorrecta_401(t *testing.T) {
	uc, _, _ := newAuth(t)

	_, err := uc.Login(dto.LoginRequest{Email: "clara@example.com", Password: "malamala"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotAuthenticated))
	assert.Equal(t, "Credenciales incorrectas", err.Error())
}

func TestLogin_EmailDesconocido_401(t *testing.T) {
	uc, _, _ := newAuth(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "12345678Z"})
	assert.True(t, errors.Is(err, domain.ErrNotAuthenticated))
}

func TestLogin_SinCampos_422(t *testing.T) {
	uc, _, _ := newAuth(t)

	_, err := uc.Login(dto.LoginRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	fields := domain.ValidationFields(err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	uc, _, user := newAuth(t)

	out, err := uc.Login(dto.LoginRequest{Email: "clara@example.com", Password: "12345678Z"})
	require.NoError(t, err)

	actor, err := uc.Authenticate(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, actor.ID)
	assert.Equal(t, entity.RoleCustomer, actor.Role)
}

func TestLogout_RevocaTodasLasSesiones(t *testing.T) {
	uc, s, user := newAuth(t)

	primero, err := uc.Login(dto.LoginRequest{Email: "clara@example.com", Password: "12345678Z"})
	require.NoError(t, err)
	segundo, err := uc.Login(dto.LoginRequest{Email: "clara@example.com", Password: "12345678Z"})
	require.NoError(t, err)
	require.Len(t, s.Tokens.Rows, 2)

	require.NoError(t, uc.Logout(user))

	_, err = uc.Authenticate(primero.AccessToken)
	assert.True(t, errors.Is(err, domain.ErrNotAuthenticated), "el logout revoca todas las sesiones, no solo la actual")
	_, err = uc.Authenticate(segundo.AccessToken)
	assert.True(t, errors.Is(err, domain.ErrNotAuthenticated))
}

func TestAuthenticate_SesionCaducada_401(t *testing.T) {
	uc, s, _ := newAuth(t)

	out, err := uc.Login(dto.LoginRequest{Email: "clara@example.com", Password: "12345678Z"})
	require.NoError(t, err)
	// Forzamos la caducidad de la fila de sesión sin tocar el JWT.
	s.Tokens.Rows[0].ExpiresAt = time.Now().Add(-time.Hour)

	_, err = uc.Authenticate(out.AccessToken)
	assert.True(t, errors.Is(err, domain.ErrNotAuthenticated))
}

func TestAuthenticate_TokenBasura_401(t *testing.T) {
	uc, _, _ := newAuth(t)

	_, err := uc.Authenticate("token.invalido.aqui")
	assert.True(t, errors.Is(err, domain.ErrNotAuthenticated))
}
