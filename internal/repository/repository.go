// Package repository declares the persistence interfaces consumed by services.
package repository

import (
	"context"

	"github.com/EricVonza/go-pesa-backend/internal/domain"
)

// UserRepository persists user accounts. Records are created at signup and
// read afterwards; nothing in the system updates or deletes them.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}
