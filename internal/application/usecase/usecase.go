// Package usecase orquesta cada operación de la API: autenticación ya
// resuelta (el actor llega del middleware), puerta de rol (policy), puerta de
// propiedad/proyección (scope) y por último la persistencia. El orden de los
// fallos terminales es fijo: 401 antes que 403 antes que 400/404.
package usecase

import (
	"context"

	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

// TxRunner es el puerto transaccional del alta combinada User +
// Employee/Customer. La implementación real vive en infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		employeeRepo repository.EmployeeRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// errNoAutorizado es el 403 genérico del sistema original.
func errNoAutorizado() error {
	return domain.Forbidden("No autorizad@")
}

// requireActor distingue 401 de 403: sin actor no se consulta ninguna policy.
func requireActor(actor *entity.User) error {
	if actor == nil {
		return domain.NotAuthenticated("Usuario no autenticado")
	}
	return nil
}
