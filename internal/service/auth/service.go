// Package auth implements the signup, login, and profile workflows.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/EricVonza/go-pesa-backend/internal/domain"
	"github.com/EricVonza/go-pesa-backend/internal/repository"
	"github.com/EricVonza/go-pesa-backend/pkg/config"
	"github.com/EricVonza/go-pesa-backend/pkg/crypto"
	jwtpkg "github.com/EricVonza/go-pesa-backend/pkg/jwt"
)

var (
	// ErrUserNotFound means no account exists for the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials means the password did not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles authentication workflows. It keeps no state of its own;
// every call goes straight to the store and the hashing/signing primitives.
type Service struct {
	users  repository.UserRepository
	logger *slog.Logger
	cfg    config.APIConfig
}

// New constructs a Service.
func New(users repository.UserRepository, logger *slog.Logger, cfg config.APIConfig) Service {
	return Service{users: users, logger: logger, cfg: cfg}
}

// Signup registers a new user. No token is issued; the caller is expected to
// log in afterwards. Inputs are stored as given, including empty fields.
func (s Service) Signup(ctx context.Context, name, email, username, password string) (*domain.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.logger.Warn("signup rejected", "email", email, "reason", "duplicate_email")
		}
		return nil, err
	}
	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies credentials and returns a signed session token.
func (s Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("login failed", "email", email, "reason", "user_not_found")
			return "", ErrUserNotFound
		}
		return "", err
	}
	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Warn("login failed", "email", email, "reason", "invalid_password")
		return "", ErrInvalidCredentials
	}
	token, err := jwtpkg.GenerateToken(user.ID, s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// Profile returns the account for an already-authenticated user id.
func (s Service) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// VerifyToken validates a bearer token and returns its claims. Used by the
// HTTP middleware; whether the referenced user still exists is the profile
// handler's concern, not the token's.
func (s Service) VerifyToken(token string) (*jwtpkg.Claims, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, errors.New("token required")
	}
	return jwtpkg.Parse(trimmed, s.cfg.JWTSecret)
}
