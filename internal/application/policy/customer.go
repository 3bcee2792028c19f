package policy

import "github.com/correduria/backoffice/internal/domain/entity"

// CustomerCreate: el personal de la correduría da de alta clientes.
func CustomerCreate(u *entity.User) bool {
	return hasRole(u, entity.RoleEmployee, entity.RoleManager, entity.RoleAdmin)
}

// CustomerView: cualquier rol puede ver la ficha de un cliente.
func CustomerView(u *entity.User) bool {
	return hasRole(u, entity.RoleEmployee, entity.RoleManager, entity.RoleAdmin, entity.RoleCustomer)
}

// CustomerViewAll: el listado completo es solo para el personal.
func CustomerViewAll(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee)
}

// CustomerUpdate: el personal modifica datos de clientes.
func CustomerUpdate(u *entity.User) bool {
	return hasRole(u, entity.RoleManager, entity.RoleAdmin, entity.RoleEmployee)
}

// CustomerDelete: solo Admin.
func CustomerDelete(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}

// CustomerViewMine: "mis clientes" solo tiene sentido para Empleado y Manager.
func CustomerViewMine(u *entity.User) bool {
	return hasRole(u, entity.RoleEmployee, entity.RoleManager)
}
