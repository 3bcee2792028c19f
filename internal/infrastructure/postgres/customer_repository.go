package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	db DB
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(db DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.AuthID, &c.PhoneNumber, &c.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente y rellena su ID.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (auth_id, phone_number, address)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		customer.AuthID, customer.PhoneNumber, customer.Address,
	).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(context.Background(),
		`SELECT id, auth_id, phone_number, address FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get customer by id: %w", err)
	}
	return c, nil
}

// GetByAuthID obtiene el cliente asociado a un usuario.
func (r *CustomerRepo) GetByAuthID(userID int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(context.Background(),
		`SELECT id, auth_id, phone_number, address FROM customers WHERE auth_id = $1`, userID))
	if err != nil {
		return nil, fmt.Errorf("get customer by auth_id: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes ordenados por id.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	return r.list(`SELECT id, auth_id, phone_number, address FROM customers ORDER BY id`)
}

// ListByIDs devuelve los clientes cuyos ids están en la lista.
func (r *CustomerRepo) ListByIDs(ids []int64) ([]*entity.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(`SELECT id, auth_id, phone_number, address FROM customers WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *CustomerRepo) list(query string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.AuthID, &c.PhoneNumber, &c.Address); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto del cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE customers SET phone_number = $2, address = $3 WHERE id = $1`,
		customer.ID, customer.PhoneNumber, customer.Address,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente. Sus pólizas quedan con customer_id a null (FK).
func (r *CustomerRepo) Delete(id int64) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
