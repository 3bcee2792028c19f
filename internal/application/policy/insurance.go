package policy

import "github.com/correduria/backoffice/internal/domain/entity"

// InsuranceCreate: el personal vende pólizas.
func InsuranceCreate(u *entity.User) bool {
	return hasRole(u, entity.RoleEmployee, entity.RoleManager, entity.RoleAdmin)
}

// InsuranceView: cualquier rol puede ver una póliza (el detalle añade la
// puerta de propiedad, ver scope.IsMyInsurance).
func InsuranceView(u *entity.User) bool {
	return hasRole(u, entity.RoleEmployee, entity.RoleManager, entity.RoleAdmin, entity.RoleCustomer)
}

// InsuranceViewAll: el listado completo es solo para Admin.
func InsuranceViewAll(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}

// InsuranceUpdate: el personal modifica pólizas (solo la descripción).
func InsuranceUpdate(u *entity.User) bool {
	return hasRole(u, entity.RoleManager, entity.RoleAdmin, entity.RoleEmployee)
}

// InsuranceDelete: el personal elimina pólizas (con la puerta de propiedad
// para Empleado/Manager en la capa de aplicación).
func InsuranceDelete(u *entity.User) bool {
	return hasRole(u, entity.RoleManager, entity.RoleAdmin, entity.RoleEmployee)
}

// InsuranceViewMine: "mis pólizas" para vendedores y clientes.
func InsuranceViewMine(u *entity.User) bool {
	return hasRole(u, entity.RoleEmployee, entity.RoleManager, entity.RoleCustomer)
}
