package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

var _ repository.InsuranceRepository = (*InsuranceRepo)(nil)

// InsuranceRepo implementación del puerto InsuranceRepository sobre PostgreSQL.
type InsuranceRepo struct {
	db DB
}

// NewInsuranceRepository construye el adaptador de persistencia para pólizas.
func NewInsuranceRepository(db DB) *InsuranceRepo {
	return &InsuranceRepo{db: db}
}

const insuranceColumns = `id, subject_type, description, customer_id, employee_id, created_at, updated_at`

// Create persiste una nueva póliza y rellena su ID.
func (r *InsuranceRepo) Create(insurance *entity.Insurance) error {
	query := `
		INSERT INTO insurances (subject_type, description, customer_id, employee_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		insurance.SubjectType, insurance.Description, insurance.CustomerID,
		insurance.EmployeeID, insurance.CreatedAt, insurance.UpdatedAt,
	).Scan(&insurance.ID)
	if err != nil {
		return fmt.Errorf("insert insurance: %w", err)
	}
	return nil
}

// GetByID obtiene una póliza por ID.
func (r *InsuranceRepo) GetByID(id int64) (*entity.Insurance, error) {
	var i entity.Insurance
	err := r.db.QueryRow(context.Background(),
		`SELECT `+insuranceColumns+` FROM insurances WHERE id = $1`, id,
	).Scan(&i.ID, &i.SubjectType, &i.Description, &i.CustomerID, &i.EmployeeID,
		&i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insurance by id: %w", err)
	}
	return &i, nil
}

// List devuelve todas las pólizas ordenadas por id.
func (r *InsuranceRepo) List() ([]*entity.Insurance, error) {
	return r.list(`SELECT ` + insuranceColumns + ` FROM insurances ORDER BY id`)
}

// ListByEmployee devuelve las pólizas vendidas por un empleado.
func (r *InsuranceRepo) ListByEmployee(employeeID int64) ([]*entity.Insurance, error) {
	return r.list(`SELECT `+insuranceColumns+` FROM insurances WHERE employee_id = $1 ORDER BY id`, employeeID)
}

// ListByCustomer devuelve las pólizas contratadas por un cliente.
func (r *InsuranceRepo) ListByCustomer(customerID int64) ([]*entity.Insurance, error) {
	return r.list(`SELECT `+insuranceColumns+` FROM insurances WHERE customer_id = $1 ORDER BY id`, customerID)
}

func (r *InsuranceRepo) list(query string, args ...any) ([]*entity.Insurance, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insurances: %w", err)
	}
	defer rows.Close()
	var list []*entity.Insurance
	for rows.Next() {
		var i entity.Insurance
		if err := rows.Scan(&i.ID, &i.SubjectType, &i.Description, &i.CustomerID,
			&i.EmployeeID, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan insurance: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// CountByEmployee cuenta las pólizas de un empleado (bloqueo de borrado).
func (r *InsuranceRepo) CountByEmployee(employeeID int64) (int, error) {
	return r.count(`SELECT COUNT(*) FROM insurances WHERE employee_id = $1`, employeeID)
}

// CountByCustomer cuenta las pólizas de un cliente (bloqueo de borrado).
func (r *InsuranceRepo) CountByCustomer(customerID int64) (int, error) {
	return r.count(`SELECT COUNT(*) FROM insurances WHERE customer_id = $1`, customerID)
}

func (r *InsuranceRepo) count(query string, args ...any) (int, error) {
	var n int
	if err := r.db.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count insurances: %w", err)
	}
	return n, nil
}

// ExistsForEmployeeAndCustomer comprueba si el empleado ha vendido alguna póliza al cliente.
func (r *InsuranceRepo) ExistsForEmployeeAndCustomer(employeeID, customerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM insurances WHERE employee_id = $1 AND customer_id = $2)`,
		employeeID, customerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("insurance exists for employee and customer: %w", err)
	}
	return exists, nil
}

// Update actualiza la póliza (la descripción; subject_type es inmutable).
func (r *InsuranceRepo) Update(insurance *entity.Insurance) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE insurances SET description = $2, updated_at = $3 WHERE id = $1`,
		insurance.ID, insurance.Description, insurance.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update insurance: %w", err)
	}
	return nil
}

// Delete elimina una póliza. Sus incidencias quedan con insurance_id a null (FK).
func (r *InsuranceRepo) Delete(id int64) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM insurances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete insurance: %w", err)
	}
	return nil
}
