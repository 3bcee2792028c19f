// Package auth implementa login, logout y la resolución del actor a partir
// del token Bearer. Las sesiones son revocables: cada login inserta una fila
// en api_tokens con el jti del JWT; si la fila no existe o caducó, el token
// deja de valer aunque la firma sea correcta.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
	pkgjwt "github.com/correduria/backoffice/pkg/jwt"
)

// Usecase concentra la emisión y verificación de credenciales.
type Usecase struct {
	users  repository.UserRepository
	tokens repository.TokenRepository

	secret  string
	issuer  string
	expDays int
}

func NewUsecase(users repository.UserRepository, tokens repository.TokenRepository, secret, issuer string, expDays int) *Usecase {
	return &Usecase{
		users:   users,
		tokens:  tokens,
		secret:  secret,
		issuer:  issuer,
		expDays: expDays,
	}
}

// Login valida las credenciales y emite un token Bearer de expDays días.
func (uc *Usecase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	fe := domain.FieldErrors{}
	if req.Email == "" {
		fe.Add("email", "El email es obligatorio.")
	}
	if req.Password == "" {
		fe.Add("password", "La contraseña es obligatoria.")
	}
	if err := finishValidation(fe); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotAuthenticated("Credenciales incorrectas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.NotAuthenticated("Credenciales incorrectas")
	}

	// Limpieza oportunista de sesiones caducadas.
	_ = uc.tokens.DeleteExpired()

	jti := uuid.NewString()
	signed, err := pkgjwt.Generate(uc.secret, user.ID, user.Role, jti, uc.issuer, uc.expDays)
	if err != nil {
		return nil, err
	}
	name := req.DeviceName
	if name == "" {
		name = "api"
	}
	now := time.Now()
	token := &entity.APIToken{
		ID:        jti,
		UserID:    user.ID,
		Name:      name,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(uc.expDays) * 24 * time.Hour),
	}
	if err := uc.tokens.Create(token); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		Role:        user.Role,
		Username:    user.FullName(),
	}, nil
}

// Logout revoca todas las sesiones del actor.
func (uc *Usecase) Logout(actor *entity.User) error {
	if actor == nil {
		return domain.NotAuthenticated("Usuario no autenticado")
	}
	return uc.tokens.DeleteByUser(actor.ID)
}

// Authenticate resuelve el actor a partir del token Bearer. Cualquier fallo
// (firma, caducidad, sesión revocada, usuario borrado) es el mismo 401.
func (uc *Usecase) Authenticate(tokenString string) (*entity.User, error) {
	userID, _, jti, err := pkgjwt.Parse(uc.secret, tokenString)
	if err != nil {
		return nil, domain.NotAuthenticated("Usuario no autenticado")
	}
	session, err := uc.tokens.GetByID(jti)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(time.Now()) || session.UserID != userID {
		return nil, domain.NotAuthenticated("Usuario no autenticado")
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotAuthenticated("Usuario no autenticado")
	}
	return user, nil
}

func finishValidation(fe domain.FieldErrors) error {
	if len(fe) > 0 {
		return domain.Validation(fe)
	}
	return nil
}
