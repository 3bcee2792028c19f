package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/correduria/backoffice/internal/application/auth"
	"github.com/correduria/backoffice/internal/application/scope"
	"github.com/correduria/backoffice/internal/application/usecase"
	"github.com/correduria/backoffice/internal/domain/entity"
	apphttp "github.com/correduria/backoffice/internal/interfaces/http"
	"github.com/correduria/backoffice/internal/testutil"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// ─────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ─────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app   *fiber.App
	store *testutil.Store
	auth  *auth.Usecase
}

// buildTestApp levanta la aplicación completa sobre repos en memoria.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	s := testutil.NewStore()
	res := scope.NewResolver(s.Users, s.Employees, s.Customers, s.Insurances, s.Issues)
	authUC := auth.NewUsecase(s.Users, s.Tokens, testJWTSecret, "test", 7)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		UserUC:      usecase.NewUserUsecase(s.Users, s.Employees, s.Customers, s.Insurances, res, s),
		CompanyUC:   usecase.NewCompanyUsecase(s.Companies, s.Employees, res),
		EmployeeUC:  usecase.NewEmployeeUsecase(s.Employees, s.Users, s.Insurances, res),
		CustomerUC:  usecase.NewCustomerUsecase(s.Customers, s.Users, s.Insurances, res),
		InsuranceUC: usecase.NewInsuranceUsecase(s.Insurances, s.Customers, s.Employees, s.Users, s.Issues, res),
		IssueUC:     usecase.NewIssueUsecase(s.Issues, s.Insurances, s.Customers, s.Employees, s.Users, res),
	})
	return &testEnv{app: app, store: s, auth: authUC}
}

// seedUser crea un usuario con contraseña igual al DNI, como hace el alta real.
func (e *testEnv) seedUser(t *testing.T, dni, email, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(dni), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		DNI: dni, FirstName: "Test", LastName: role,
		Email: &email, PasswordHash: string(hash), Role: role,
	}
	require.NoError(t, e.store.Users.Create(u))
	return u
}

// login hace POST /api/login y devuelve el access_token.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login debe funcionar")

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	token, _ := out["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

// doGet lanza un GET con (o sin) Authorization y devuelve la respuesta.
func (e *testEnv) doGet(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ─────────────────────────────────────────────────────────────────────────────
// Middleware de autenticación
// ─────────────────────────────────────────────────────────────────────────────

// Caso 1: sin header Authorization → 401, nunca 403.
func TestAuth_SinToken_Retorna401(t *testing.T) {
	e := buildTestApp(t)

	resp := e.doGet(t, "/api/users", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"la falta de credencial es 401 aunque la ruta exigiera un rol concreto")
}

// Caso 2: token basura → 401.
func TestAuth_TokenInvalido_Retorna401(t *testing.T) {
	e := buildTestApp(t)

	resp := e.doGet(t, "/api/users", "token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: token firmado pero con la sesión revocada por logout → 401.
func TestAuth_TokenRevocado_Retorna401(t *testing.T) {
	e := buildTestApp(t)
	admin := e.seedUser(t, "99999999A", "admin@example.com", entity.RoleAdmin)
	token := e.login(t, "admin@example.com", "99999999A")

	require.NoError(t, e.auth.Logout(admin))

	resp := e.doGet(t, "/api/users", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"tras el logout el JWT sigue firmado pero la sesión ya no existe")
}

// Caso 4: autenticado pero sin rol suficiente → 403 (después del 401).
func TestAuth_RolInsuficiente_Retorna403(t *testing.T) {
	e := buildTestApp(t)
	e.seedUser(t, "11111111B", "cliente@example.com", entity.RoleCustomer)
	token := e.login(t, "cliente@example.com", "11111111B")

	resp := e.doGet(t, "/api/users", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No autorizad@")
}

// Caso 5: flujo completo login → ruta protegida → logout.
func TestAuth_FlujoCompleto(t *testing.T) {
	e := buildTestApp(t)
	e.seedUser(t, "99999999A", "admin@example.com", entity.RoleAdmin)
	token := e.login(t, "admin@example.com", "99999999A")

	resp := e.doGet(t, "/api/users", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.doGet(t, "/api/users", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialización y rutas
// ─────────────────────────────────────────────────────────────────────────────

// La contraseña no aparece jamás en una respuesta, ni siquiera en /user.
func TestUser_PasswordNuncaSerializada(t *testing.T) {
	e := buildTestApp(t)
	e.seedUser(t, "99999999A", "admin@example.com", entity.RoleAdmin)
	token := e.login(t, "admin@example.com", "99999999A")

	for _, path := range []string{"/api/user", "/api/users"} {
		resp := e.doGet(t, path, token)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.NotContains(t, string(body), "password", "ruta %s", path)
		assert.NotContains(t, string(body), "$2a$", "ruta %s (hash bcrypt)", path)
	}
}

// Login con credenciales malas → 401 con el mensaje del original.
func TestLogin_CredencialesIncorrectas(t *testing.T) {
	e := buildTestApp(t)
	e.seedUser(t, "99999999A", "admin@example.com", entity.RoleAdmin)

	body, _ := json.Marshal(map[string]string{"email": "admin@example.com", "password": "mala"})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Credenciales incorrectas")
}

// Login sin campos → 422 con errores por campo.
func TestLogin_SinCampos_422(t *testing.T) {
	e := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "errors")
}

// Ruta desconocida → el 404 JSON del fallback.
func TestRouter_RutaDesconocida_404JSON(t *testing.T) {
	e := buildTestApp(t)

	resp := e.doGet(t, "/no-existe", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Ruta no encontrada", out["message"])
	assert.Equal(t, false, out["success"])
}
