// Package testutil contiene dobles en memoria de los puertos de persistencia
// para los tests de application e interfaces. No se usa en producción.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

// Store agrupa todos los repositorios en memoria más el TxRunner falso.
type Store struct {
	Users      *MemUserRepo
	Companies  *MemCompanyRepo
	Employees  *MemEmployeeRepo
	Customers  *MemCustomerRepo
	Insurances *MemInsuranceRepo
	Issues     *MemIssueRepo
	Tokens     *MemTokenRepo

	// FailWith hace que Run falle sin invocar el callback.
	FailWith error
}

func NewStore() *Store {
	users := &MemUserRepo{}
	return &Store{
		Users:      users,
		Companies:  &MemCompanyRepo{},
		Employees:  &MemEmployeeRepo{Users: users},
		Customers:  &MemCustomerRepo{},
		Insurances: &MemInsuranceRepo{},
		Issues:     &MemIssueRepo{},
		Tokens:     &MemTokenRepo{},
	}
}

// Run ejecuta el callback sobre los mismos repos, sin transacción real. Si
// FailWith no es nil lo devuelve sin invocar el callback, para simular un
// fallo de transacción.
func (s *Store) Run(_ context.Context, fn func(repository.UserRepository, repository.EmployeeRepository, repository.CustomerRepository) error) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	return fn(s.Users, s.Employees, s.Customers)
}

// ─────────────────────────────────────────────────────────────────────────────
// Users
// ─────────────────────────────────────────────────────────────────────────────

type MemUserRepo struct {
	Rows   []*entity.User
	nextID int64
}

func (r *MemUserRepo) Create(u *entity.User) error {
	for _, row := range r.Rows {
		if row.DNI == u.DNI {
			return fmt.Errorf("%w: dni", domain.ErrDuplicate)
		}
		if row.Email != nil && u.Email != nil && *row.Email == *u.Email {
			return fmt.Errorf("%w: email", domain.ErrDuplicate)
		}
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.Rows = append(r.Rows, &cp)
	return nil
}

func (r *MemUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, row := range r.Rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, row := range r.Rows {
		if row.Email != nil && *row.Email == email {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemUserRepo) GetByDNI(dni string) (*entity.User, error) {
	for _, row := range r.Rows {
		if row.DNI == dni {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.Rows))
	for _, row := range r.Rows {
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemUserRepo) Update(u *entity.User) error {
	for _, row := range r.Rows {
		if row.ID == u.ID {
			continue
		}
		if row.DNI == u.DNI {
			return fmt.Errorf("%w: dni", domain.ErrDuplicate)
		}
		if row.Email != nil && u.Email != nil && *row.Email == *u.Email {
			return fmt.Errorf("%w: email", domain.ErrDuplicate)
		}
	}
	for i, row := range r.Rows {
		if row.ID == u.ID {
			// el UPDATE real no toca created_at
			u.CreatedAt = row.CreatedAt
			cp := *u
			r.Rows[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemUserRepo) Delete(id int64) error {
	for i, row := range r.Rows {
		if row.ID == id {
			r.Rows = append(r.Rows[:i], r.Rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Companies
// ─────────────────────────────────────────────────────────────────────────────

type MemCompanyRepo struct {
	Rows   []*entity.Company
	nextID int64
}

func (r *MemCompanyRepo) Create(c *entity.Company) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.Rows = append(r.Rows, &cp)
	return nil
}

func (r *MemCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	for _, row := range r.Rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemCompanyRepo) List() ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.Rows))
	for _, row := range r.Rows {
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemCompanyRepo) Update(c *entity.Company) error {
	for i, row := range r.Rows {
		if row.ID == c.ID {
			c.CreatedAt = row.CreatedAt
			cp := *c
			r.Rows[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemCompanyRepo) Delete(id int64) error {
	for i, row := range r.Rows {
		if row.ID == id {
			r.Rows = append(r.Rows[:i], r.Rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Employees
// ─────────────────────────────────────────────────────────────────────────────

type MemEmployeeRepo struct {
	Rows   []*entity.Employee
	Users  *MemUserRepo // para ManagerExists
	nextID int64
}

func (r *MemEmployeeRepo) Create(e *entity.Employee) error {
	r.nextID++
	e.ID = r.nextID
	cp := *e
	r.Rows = append(r.Rows, &cp)
	return nil
}

func (r *MemEmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	for _, row := range r.Rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemEmployeeRepo) GetByAuthID(userID int64) (*entity.Employee, error) {
	for _, row := range r.Rows {
		if row.AuthID == userID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemEmployeeRepo) List() ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(r.Rows))
	for _, row := range r.Rows {
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemEmployeeRepo) ListByCompany(companyID int64) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, row := range r.Rows {
		if row.CompanyID != nil && *row.CompanyID == companyID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemEmployeeRepo) CountByCompany(companyID int64) (int, error) {
	n := 0
	for _, row := range r.Rows {
		if row.CompanyID != nil && *row.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (r *MemEmployeeRepo) ManagerExists(companyID int64) (bool, error) {
	if r.Users == nil {
		return false, nil
	}
	for _, row := range r.Rows {
		if row.CompanyID == nil || *row.CompanyID != companyID {
			continue
		}
		u, _ := r.Users.GetByID(row.AuthID)
		if u != nil && u.Role == entity.RoleManager {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemEmployeeRepo) Update(e *entity.Employee) error {
	for i, row := range r.Rows {
		if row.ID == e.ID {
			cp := *e
			r.Rows[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemEmployeeRepo) Delete(id int64) error {
	for i, row := range r.Rows {
		if row.ID == id {
			r.Rows = append(r.Rows[:i], r.Rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Customers
// ─────────────────────────────────────────────────────────────────────────────

type MemCustomerRepo struct {
	Rows   []*entity.Customer
	nextID int64
}

func (r *MemCustomerRepo) Create(c *entity.Customer) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.Rows = append(r.Rows, &cp)
	return nil
}

func (r *MemCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	for _, row := range r.Rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemCustomerRepo) GetByAuthID(userID int64) (*entity.Customer, error) {
	for _, row := range r.Rows {
		if row.AuthID == userID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.Rows))
	for _, row := range r.Rows {
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemCustomerRepo) ListByIDs(ids []int64) ([]*entity.Customer, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*entity.Customer
	for _, row := range r.Rows {
		if want[row.ID] {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemCustomerRepo) Update(c *entity.Customer) error {
	for i, row := range r.Rows {
		if row.ID == c.ID {
			cp := *c
			r.Rows[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemCustomerRepo) Delete(id int64) error {
	for i, row := range r.Rows {
		if row.ID == id {
			r.Rows = append(r.Rows[:i], r.Rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Insurances
// ─────────────────────────────────────────────────────────────────────────────

type MemInsuranceRepo struct {
	Rows   []*entity.Insurance
	nextID int64
}

func (r *MemInsuranceRepo) Create(i *entity.Insurance) error {
	r.nextID++
	i.ID = r.nextID
	cp := *i
	r.Rows = append(r.Rows, &cp)
	return nil
}

func (r *MemInsuranceRepo) GetByID(id int64) (*entity.Insurance, error) {
	for _, row := range r.Rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemInsuranceRepo) List() ([]*entity.Insurance, error) {
	out := make([]*entity.Insurance, 0, len(r.Rows))
	for _, row := range r.Rows {
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemInsuranceRepo) ListByEmployee(employeeID int64) ([]*entity.Insurance, error) {
	var out []*entity.Insurance
	for _, row := range r.Rows {
		if row.EmployeeID != nil && *row.EmployeeID == employeeID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemInsuranceRepo) ListByCustomer(customerID int64) ([]*entity.Insurance, error) {
	var out []*entity.Insurance
	for _, row := range r.Rows {
		if row.CustomerID != nil && *row.CustomerID == customerID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemInsuranceRepo) CountByEmployee(employeeID int64) (int, error) {
	list, _ := r.ListByEmployee(employeeID)
	return len(list), nil
}

func (r *MemInsuranceRepo) CountByCustomer(customerID int64) (int, error) {
	list, _ := r.ListByCustomer(customerID)
	return len(list), nil
}

func (r *MemInsuranceRepo) ExistsForEmployeeAndCustomer(employeeID, customerID int64) (bool, error) {
	for _, row := range r.Rows {
		if row.EmployeeID != nil && *row.EmployeeID == employeeID &&
			row.CustomerID != nil && *row.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemInsuranceRepo) Update(i *entity.Insurance) error {
	for idx, row := range r.Rows {
		if row.ID == i.ID {
			i.CreatedAt = row.CreatedAt
			cp := *i
			r.Rows[idx] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemInsuranceRepo) Delete(id int64) error {
	for i, row := range r.Rows {
		if row.ID == id {
			r.Rows = append(r.Rows[:i], r.Rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Issues
// ─────────────────────────────────────────────────────────────────────────────

type MemIssueRepo struct {
	Rows   []*entity.Issue
	nextID int64
}

func (r *MemIssueRepo) Create(i *entity.Issue) error {
	r.nextID++
	i.ID = r.nextID
	cp := *i
	r.Rows = append(r.Rows, &cp)
	return nil
}

func (r *MemIssueRepo) GetByID(id int64) (*entity.Issue, error) {
	for _, row := range r.Rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemIssueRepo) List() ([]*entity.Issue, error) {
	out := make([]*entity.Issue, 0, len(r.Rows))
	for _, row := range r.Rows {
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemIssueRepo) ListByInsurance(insuranceID int64) ([]*entity.Issue, error) {
	var out []*entity.Issue
	for _, row := range r.Rows {
		if row.InsuranceID != nil && *row.InsuranceID == insuranceID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemIssueRepo) ListByInsurances(insuranceIDs []int64) ([]*entity.Issue, error) {
	want := make(map[int64]bool, len(insuranceIDs))
	for _, id := range insuranceIDs {
		want[id] = true
	}
	var out []*entity.Issue
	for _, row := range r.Rows {
		if row.InsuranceID != nil && want[*row.InsuranceID] {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemIssueRepo) HasOpenByInsurance(insuranceID int64) (bool, error) {
	for _, row := range r.Rows {
		if row.InsuranceID != nil && *row.InsuranceID == insuranceID && row.Status != entity.IssueClosed {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemIssueRepo) Update(i *entity.Issue) error {
	for idx, row := range r.Rows {
		if row.ID == i.ID {
			cp := *i
			r.Rows[idx] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemIssueRepo) Delete(id int64) error {
	for i, row := range r.Rows {
		if row.ID == id {
			r.Rows = append(r.Rows[:i], r.Rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────────────────────────────────────

type MemTokenRepo struct {
	Rows []*entity.APIToken
}

func (r *MemTokenRepo) Create(t *entity.APIToken) error {
	cp := *t
	r.Rows = append(r.Rows, &cp)
	return nil
}

func (r *MemTokenRepo) GetByID(id string) (*entity.APIToken, error) {
	for _, row := range r.Rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemTokenRepo) DeleteByUser(userID int64) error {
	var kept []*entity.APIToken
	for _, row := range r.Rows {
		if row.UserID != userID {
			kept = append(kept, row)
		}
	}
	r.Rows = kept
	return nil
}

func (r *MemTokenRepo) DeleteExpired() error {
	now := time.Now()
	var kept []*entity.APIToken
	for _, row := range r.Rows {
		if !row.Expired(now) {
			kept = append(kept, row)
		}
	}
	r.Rows = kept
	return nil
}
