package dto

import "github.com/correduria/backoffice/internal/domain/entity"

// NewUserResponse convierte la entidad a su forma pública. Aquí se descarta
// el hash de contraseña; ningún handler serializa un entity.User directamente.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		DNI:       u.DNI,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewCompanyResponse(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewEmployeeResponse(e *entity.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:        e.ID,
		AuthID:    e.AuthID,
		CompanyID: e.CompanyID,
	}
}

func NewCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:          c.ID,
		AuthID:      c.AuthID,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
	}
}

func NewInsuranceResponse(i *entity.Insurance) *InsuranceResponse {
	if i == nil {
		return nil
	}
	return &InsuranceResponse{
		ID:          i.ID,
		SubjectType: i.SubjectType,
		Description: i.Description,
		CustomerID:  i.CustomerID,
		EmployeeID:  i.EmployeeID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func NewIssueResponse(i *entity.Issue) *IssueResponse {
	if i == nil {
		return nil
	}
	return &IssueResponse{
		ID:          i.ID,
		InsuranceID: i.InsuranceID,
		Subject:     i.Subject,
		Status:      i.Status,
	}
}

// NewInsuranceList convierte un lote manteniendo el orden.
func NewInsuranceList(list []*entity.Insurance) []InsuranceResponse {
	out := make([]InsuranceResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *NewInsuranceResponse(i))
	}
	return out
}

func NewIssueList(list []*entity.Issue) []IssueResponse {
	out := make([]IssueResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *NewIssueResponse(i))
	}
	return out
}

// NewEmployeeWithUser empaqueta el par empleado/usuario de los listados.
func NewEmployeeWithUser(e *entity.Employee, u *entity.User) EmployeeWithUser {
	return EmployeeWithUser{
		Employee: *NewEmployeeResponse(e),
		User:     NewUserResponse(u),
	}
}

func NewCustomerWithUser(c *entity.Customer, u *entity.User) CustomerWithUser {
	return CustomerWithUser{
		Customer: *NewCustomerResponse(c),
		User:     NewUserResponse(u),
	}
}
