// Package session keeps the bearer token in local storage and gates
// token-only screens.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/client/storage"
	"github.com/golang-jwt/jwt/v5"
)

// Screen names a top-level view of the client.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenHome     Screen = "home"
)

// Guard is the outcome of RequireAuth. When Authorized is false the caller
// must navigate to Redirect and render nothing else.
type Guard struct {
	Authorized bool
	Token      string
	Redirect   Screen
}

type Session struct {
	repo storage.Repository
	now  func() time.Time
}

func New(repo storage.Repository) *Session {
	return &Session{repo: repo, now: time.Now}
}

// Token returns the stored token or "" when there is none.
func (s *Session) Token(ctx context.Context) (string, error) {
	b, err := s.repo.Get(ctx, storage.KeyToken)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(b), nil
}

// SetToken stores token; an empty token removes the stored one.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}
	if err := s.repo.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// Clear logs out locally. Record lists are left in place.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, storage.KeyToken); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// RequireAuth reports whether a usable token is present. A token whose exp
// claim has passed is removed and treated as absent. The signature is not
// checked here; the server does that.
func (s *Session) RequireAuth(ctx context.Context) (Guard, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return Guard{}, err
	}
	if token == "" {
		return Guard{Redirect: ScreenLogin}, nil
	}

	if s.expired(token) {
		if err := s.Clear(ctx); err != nil {
			return Guard{}, err
		}
		return Guard{Redirect: ScreenLogin}, nil
	}

	return Guard{Authorized: true, Token: token}, nil
}

func (s *Session) expired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !s.now().Before(claims.ExpiresAt.Time)
}
