package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db DB
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(&e.ID, &e.AuthID, &e.CompanyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// Create persiste un nuevo empleado y rellena su ID.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (auth_id, company_id)
		VALUES ($1, $2)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		employee.AuthID, employee.CompanyID,
	).Scan(&employee.ID)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(context.Background(),
		`SELECT id, auth_id, company_id FROM employees WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return e, nil
}

// GetByAuthID obtiene el empleado asociado a un usuario.
func (r *EmployeeRepo) GetByAuthID(userID int64) (*entity.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(context.Background(),
		`SELECT id, auth_id, company_id FROM employees WHERE auth_id = $1`, userID))
	if err != nil {
		return nil, fmt.Errorf("get employee by auth_id: %w", err)
	}
	return e, nil
}

// List devuelve todos los empleados ordenados por id.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	return r.list(`SELECT id, auth_id, company_id FROM employees ORDER BY id`)
}

// ListByCompany devuelve la plantilla de una empresa.
func (r *EmployeeRepo) ListByCompany(companyID int64) ([]*entity.Employee, error) {
	return r.list(`SELECT id, auth_id, company_id FROM employees WHERE company_id = $1 ORDER BY id`, companyID)
}

func (r *EmployeeRepo) list(query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.AuthID, &e.CompanyID); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CountByCompany cuenta los empleados de una empresa.
func (r *EmployeeRepo) CountByCompany(companyID int64) (int, error) {
	var n int
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM employees WHERE company_id = $1`, companyID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count employees by company: %w", err)
	}
	return n, nil
}

// ManagerExists indica si la empresa ya tiene un empleado cuyo usuario es Manager.
func (r *EmployeeRepo) ManagerExists(companyID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(), `
		SELECT EXISTS (
			SELECT 1 FROM employees e
			JOIN users u ON u.id = e.auth_id
			WHERE e.company_id = $1 AND u.role = 'Manager'
		)`, companyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("manager exists: %w", err)
	}
	return exists, nil
}

// Update actualiza el empleado (en la práctica, su company_id).
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE employees SET company_id = $2 WHERE id = $1`,
		employee.ID, employee.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado. Sus pólizas quedan con employee_id a null (FK).
func (r *EmployeeRepo) Delete(id int64) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
