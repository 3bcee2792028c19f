package policy

import "github.com/correduria/backoffice/internal/domain/entity"

// CompanyCreate: solo Admin da de alta empresas.
func CompanyCreate(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}

// CompanyViewAll: el listado de empresas es visible para todos los roles.
func CompanyViewAll(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee, entity.RoleCustomer)
}

// CompanyViewDetail: Admin, o el Manager de la propia empresa. employee es el
// registro satélite del actor (puede ser nil si no existe).
func CompanyViewDetail(u *entity.User, employee *entity.Employee, companyID int64) bool {
	if hasRole(u, entity.RoleAdmin) {
		return true
	}
	return hasRole(u, entity.RoleManager) && isTheManager(employee, companyID)
}

// CompanyUpdate: mismas condiciones que el detalle.
func CompanyUpdate(u *entity.User, employee *entity.Employee, companyID int64) bool {
	return CompanyViewDetail(u, employee, companyID)
}

// CompanyDelete: solo Admin.
func CompanyDelete(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}

// CompanyViewMyCompanyID: solo Manager consulta el id de su propia empresa.
func CompanyViewMyCompanyID(u *entity.User) bool {
	return hasRole(u, entity.RoleManager)
}

// isTheManager: el empleado del actor pertenece a la empresa en cuestión.
func isTheManager(employee *entity.Employee, companyID int64) bool {
	return employee != nil && employee.CompanyID != nil && *employee.CompanyID == companyID
}
