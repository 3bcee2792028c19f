package policy

import "github.com/correduria/backoffice/internal/domain/entity"

// EmployeeCreate: Manager y Admin dan de alta empleados.
func EmployeeCreate(u *entity.User) bool {
	return hasRole(u, entity.RoleManager, entity.RoleAdmin)
}

// EmployeeView: el personal puede ver fichas de empleados.
func EmployeeView(u *entity.User) bool {
	return hasRole(u, entity.RoleEmployee, entity.RoleManager, entity.RoleAdmin)
}

// EmployeeViewAll: el listado completo es solo para Admin.
func EmployeeViewAll(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}

// EmployeeUpdate: Manager y Admin.
func EmployeeUpdate(u *entity.User) bool {
	return hasRole(u, entity.RoleManager, entity.RoleAdmin)
}

// EmployeeDelete: solo Admin.
func EmployeeDelete(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}

// EmployeeViewMine: "mis empleados" solo para el Manager de la empresa.
func EmployeeViewMine(u *entity.User) bool {
	return hasRole(u, entity.RoleManager)
}
