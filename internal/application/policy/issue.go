package policy

import "github.com/correduria/backoffice/internal/domain/entity"

// IssueCreate: las incidencias las abren los clientes (o un Admin en su nombre).
func IssueCreate(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin, entity.RoleCustomer)
}

// IssueViewAll: el listado completo es solo para Admin.
func IssueViewAll(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}

// IssueViewDetail: cualquier rol puede ver una incidencia (los no-Admin pasan
// además por la puerta de propiedad, ver scope.IsMyIssue).
func IssueViewDetail(u *entity.User) bool {
	return hasRole(u, entity.RoleManager, entity.RoleAdmin, entity.RoleEmployee, entity.RoleCustomer)
}

// IssueUpdate: cualquier rol puede actualizar incidencias.
func IssueUpdate(u *entity.User) bool {
	return hasRole(u, entity.RoleManager, entity.RoleAdmin, entity.RoleEmployee, entity.RoleCustomer)
}

// IssueDelete: solo Admin.
func IssueDelete(u *entity.User) bool {
	return hasRole(u, entity.RoleAdmin)
}

// IssueViewMine: "mis incidencias" para vendedores y clientes.
func IssueViewMine(u *entity.User) bool {
	return hasRole(u, entity.RoleEmployee, entity.RoleCustomer, entity.RoleManager)
}
