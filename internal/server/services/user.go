// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and token-based profile
// lookup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/common"
	"github.com/dmitrijs2005/eldercare/internal/server/auth"
	"github.com/dmitrijs2005/eldercare/internal/server/config"
	"github.com/dmitrijs2005/eldercare/internal/server/models"
	"github.com/dmitrijs2005/eldercare/internal/server/repositories/repomanager"
	"github.com/jmoiron/sqlx"
)

// UserService provides authentication-related operations:
// - Register: create users with a bcrypt-hashed password
// - Login: verify credentials and mint a session token
// - WhoAmI: resolve a session token to the stored profile
type UserService struct {
	db          sqlx.ExtContext
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	jwtSecret   []byte
	tokenTTL    time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db sqlx.ExtContext, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      auth.NewPasswordHasher(cfg.BcryptCost),
		jwtSecret:   []byte(cfg.SecretKey),
		tokenTTL:    cfg.TokenTTL,
	}
}

// Register creates a user. It does not log the user in.
func (s *UserService) Register(ctx context.Context, name, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return common.ErrValidation
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return common.ErrAlreadyExists
	case !errors.Is(err, common.ErrNotFound):
		return fmt.Errorf("error searching user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         sql.NullString{String: strings.TrimSpace(name), Valid: strings.TrimSpace(name) != ""},
		Email:        email,
		PasswordHash: hash,
	}

	if _, err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// Login verifies credentials and returns a signed session token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", common.ErrValidation
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.CompareDummy(password)
			return "", common.ErrUserNotFound
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, common.ErrWrongPassword) {
			return "", common.ErrWrongPassword
		}
		return "", fmt.Errorf("error checking password: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// WhoAmI validates token and re-reads the user it names.
func (s *UserService) WhoAmI(ctx context.Context, token string) (*models.Profile, error) {
	if token == "" {
		return nil, common.ErrUnauthorized
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return user.Profile(), nil
}
