// Package auth implements the admin gate: a single bcrypt-checked password
// that, once verified, is exchanged for a short-lived signed token.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrEmptyPassword      = errors.New("admin password must not be empty")
)

// Gate checks the admin password against a bcrypt hash.
type Gate struct {
	hash []byte
}

// NewGate hashes the plain admin password.
func NewGate(password string) (*Gate, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &Gate{hash: hash}, nil
}

// NewGateFromHash uses an existing bcrypt hash, e.g. from configuration.
func NewGateFromHash(hash string) (*Gate, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid bcrypt hash: %w", err)
	}
	return &Gate{hash: []byte(hash)}, nil
}

// Check returns ErrInvalidCredentials unless password matches.
func (g *Gate) Check(password string) error {
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
