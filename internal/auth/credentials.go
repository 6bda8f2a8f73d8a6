package auth

import (
	"errors"
	"fmt"
	"supplier-admin/internal/config"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredential = errors.New("invalid credential")

// Credentials checks a submitted secret against the configured one. It holds
// no mutable state and is safe for concurrent use.
type Credentials struct {
	password     string
	passwordHash []byte
}

func NewCredentials(cfg config.AuthConfig) *Credentials {
	c := &Credentials{password: cfg.Password}
	if cfg.PasswordHash != "" {
		c.passwordHash = []byte(cfg.PasswordHash)
	}
	return c
}

// Check returns nil iff submitted equals the configured secret (exact and
// case-sensitive), ErrInvalidCredential on mismatch, and a wrapped error for
// anything else.
func (c *Credentials) Check(submitted string) error {
	if c.passwordHash != nil {
		err := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(submitted))
		switch {
		case err == nil:
			return nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return ErrInvalidCredential
		default:
			return fmt.Errorf("failed to compare password hash: %w", err)
		}
	}

	if c.password == "" || submitted != c.password {
		return ErrInvalidCredential
	}

	return nil
}
