// Package postgres implements the repository interfaces on PostgreSQL.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EricVonza/go-pesa-backend/internal/repository"
)

// pgUniqueViolation is the SQLSTATE raised when an insert hits a unique index.
const pgUniqueViolation = "23505"

// Repository implements persistence interfaces on PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// New constructs a Repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ensure Repository satisfies interfaces.
var _ repository.UserRepository = (*Repository)(nil)

// classifyScanErr maps pgx row-scan failures onto repository sentinels.
func classifyScanErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

// classifyExecErr maps pg error codes onto repository sentinels.
func classifyExecErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return repository.ErrDuplicateEmail
	}
	return err
}
