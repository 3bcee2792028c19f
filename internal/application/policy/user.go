package policy

import "github.com/correduria/backoffice/internal/domain/entity"

// UserCreate: el personal da de alta usuarios (no hay autorregistro).
func UserCreate(u *entity.User) bool {
	return hasRole(u, entity.RoleEmployee, entity.RoleManager, entity.RoleAdmin)
}

// UserView: el detalle de un usuario es solo para Admin.
func UserView(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}

// UserViewAll: el listado completo es solo para Admin.
func UserViewAll(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}

// UserUpdate: cualquier rol puede actualizar usuarios. El cambio de rol se
// rechaza incondicionalmente en la capa de aplicación, sea quien sea el actor.
func UserUpdate(u *entity.User) bool {
	return hasRole(u, entity.RoleManager, entity.RoleAdmin, entity.RoleEmployee, entity.RoleCustomer)
}

// UserDelete: solo Admin.
func UserDelete(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}
