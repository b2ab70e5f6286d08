package auth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/eldercare/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt with a fixed cost.
type PasswordHasher struct {
	cost int

	dummyOnce sync.Once
	dummy     []byte
	dummyErr  error
}

func NewPasswordHasher(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// maxPasswordBytes is bcrypt's input limit. Longer passwords are cut to it,
// so only their first 72 bytes count.
const maxPasswordBytes = 72

func clamp(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(clamp(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Compare returns common.ErrWrongPassword when password does not match hash.
func (h *PasswordHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), clamp(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return common.ErrWrongPassword
	}
	return fmt.Errorf("compare password: %w", err)
}

// CompareDummy spends one comparison against a fixed hash of the same cost,
// so a login for an unknown email takes as long as a failed one.
func (h *PasswordHasher) CompareDummy(password string) {
	h.dummyOnce.Do(func() {
		h.dummy, h.dummyErr = bcrypt.GenerateFromPassword([]byte("eldercare-dummy-password"), h.cost)
	})
	if h.dummyErr != nil {
		return
	}
	_ = bcrypt.CompareHashAndPassword(h.dummy, clamp(password))
}
