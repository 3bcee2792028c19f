package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implementación del puerto TokenRepository sobre PostgreSQL.
type TokenRepo struct {
	db DB
}

// NewTokenRepository construye el adaptador de persistencia para sesiones API.
func NewTokenRepository(db DB) *TokenRepo {
	return &TokenRepo{db: db}
}

// Create persiste una nueva sesión.
func (r *TokenRepo) Create(token *entity.APIToken) error {
	query := `
		INSERT INTO api_tokens (id, user_id, name, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		token.ID, token.UserID, token.Name, token.CreatedAt, token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert api token: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por su jti.
func (r *TokenRepo) GetByID(id string) (*entity.APIToken, error) {
	var t entity.APIToken
	err := r.db.QueryRow(context.Background(),
		`SELECT id, user_id, name, created_at, expires_at FROM api_tokens WHERE id = $1`, id,
	).Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get api token: %w", err)
	}
	return &t, nil
}

// DeleteByUser revoca todas las sesiones de un usuario.
func (r *TokenRepo) DeleteByUser(userID int64) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM api_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete api tokens by user: %w", err)
	}
	return nil
}

// DeleteExpired elimina sesiones caducadas.
func (r *TokenRepo) DeleteExpired() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM api_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return fmt.Errorf("delete expired api tokens: %w", err)
	}
	return nil
}
