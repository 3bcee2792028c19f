package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

var _ repository.IssueRepository = (*IssueRepo)(nil)

// IssueRepo implementación del puerto IssueRepository sobre PostgreSQL.
type IssueRepo struct {
	db DB
}

// NewIssueRepository construye el adaptador de persistencia para incidencias.
func NewIssueRepository(db DB) *IssueRepo {
	return &IssueRepo{db: db}
}

// Create persiste una nueva incidencia y rellena su ID.
func (r *IssueRepo) Create(issue *entity.Issue) error {
	query := `
		INSERT INTO issues (insurance_id, subject, status)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		issue.InsuranceID, issue.Subject, issue.Status,
	).Scan(&issue.ID)
	if err != nil {
		return fmt.Errorf("insert issue: %w", err)
	}
	return nil
}

// GetByID obtiene una incidencia por ID.
func (r *IssueRepo) GetByID(id int64) (*entity.Issue, error) {
	var i entity.Issue
	err := r.db.QueryRow(context.Background(),
		`SELECT id, insurance_id, subject, status FROM issues WHERE id = $1`, id,
	).Scan(&i.ID, &i.InsuranceID, &i.Subject, &i.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get issue by id: %w", err)
	}
	return &i, nil
}

// List devuelve todas las incidencias ordenadas por id.
func (r *IssueRepo) List() ([]*entity.Issue, error) {
	return r.list(`SELECT id, insurance_id, subject, status FROM issues ORDER BY id`)
}

// ListByInsurance devuelve las incidencias de una póliza.
func (r *IssueRepo) ListByInsurance(insuranceID int64) ([]*entity.Issue, error) {
	return r.list(`SELECT id, insurance_id, subject, status FROM issues WHERE insurance_id = $1 ORDER BY id`, insuranceID)
}

// ListByInsurances devuelve la unión de incidencias de un conjunto de pólizas.
func (r *IssueRepo) ListByInsurances(insuranceIDs []int64) ([]*entity.Issue, error) {
	if len(insuranceIDs) == 0 {
		return nil, nil
	}
	return r.list(`SELECT id, insurance_id, subject, status FROM issues WHERE insurance_id = ANY($1) ORDER BY id`, insuranceIDs)
}

func (r *IssueRepo) list(query string, args ...any) ([]*entity.Issue, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()
	var list []*entity.Issue
	for rows.Next() {
		var i entity.Issue
		if err := rows.Scan(&i.ID, &i.InsuranceID, &i.Subject, &i.Status); err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// HasOpenByInsurance indica si la póliza tiene alguna incidencia no cerrada.
func (r *IssueRepo) HasOpenByInsurance(insuranceID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM issues WHERE insurance_id = $1 AND status <> 'Cerrada')`,
		insuranceID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has open issues: %w", err)
	}
	return exists, nil
}

// Update actualiza una incidencia.
func (r *IssueRepo) Update(issue *entity.Issue) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE issues SET insurance_id = $2, subject = $3, status = $4 WHERE id = $1`,
		issue.ID, issue.InsuranceID, issue.Subject, issue.Status,
	)
	if err != nil {
		return fmt.Errorf("update issue: %w", err)
	}
	return nil
}

// Delete elimina una incidencia.
func (r *IssueRepo) Delete(id int64) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM issues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete issue: %w", err)
	}
	return nil
}
