// Package policy contiene los predicados de autorización por rol, uno por
// entidad. Son funciones puras: (actor, recurso opcional) -> bool, sin tocar
// persistencia. La puerta de rol se evalúa aquí; las puertas de propiedad
// ("es mi póliza", "es el manager de esta empresa") reciben ya resueltos los
// registros satélite que necesitan.
//
// Un actor nil nunca pasa ningún predicado; la distinción 401/403 la hace la
// capa de aplicación comprobando la autenticación antes de consultar aquí.
package policy

import "github.com/correduria/backoffice/internal/domain/entity"

func hasRole(u *entity.User, roles ...string) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
