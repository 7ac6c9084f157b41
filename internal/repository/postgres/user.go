package postgres

import (
	"context"

	"github.com/EricVonza/go-pesa-backend/internal/domain"
)

// CreateUser inserts a user. A collision on the unique email index surfaces
// as repository.ErrDuplicateEmail.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	const query = `INSERT INTO users (id, name, email, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query, user.ID, user.Name, user.Email, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return classifyExecErr(err)
	}
	return nil
}

// GetUserByEmail fetches a user by email. Lookups are case-sensitive exactly
// as stored; no normalization is applied.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT id, name, email, username, password_hash, created_at
		FROM users WHERE email = $1`
	row := r.pool.QueryRow(ctx, query, email)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, classifyScanErr(err)
	}
	return &u, nil
}

// GetUserByID retrieves a user by identifier.
func (r *Repository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT id, name, email, username, password_hash, created_at
		FROM users WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, classifyScanErr(err)
	}
	return &u, nil
}
