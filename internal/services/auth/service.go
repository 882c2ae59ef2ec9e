// Package auth gates destructive session operations (terminate, export)
// behind a static organizer PIN. The PIN is configured as a bcrypt hash;
// with no hash configured the gate is open.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Errors
var (
	ErrPINRequired = errors.New("pin required")
	ErrInvalidPIN  = errors.New("invalid pin")
)

// Service verifies the organizer PIN
type Service struct {
	pinHash string
}

// New creates a new auth service. An empty hash disables the gate.
func New(pinHash string) *Service {
	return &Service{pinHash: pinHash}
}

// Enabled reports whether a PIN is configured
func (s *Service) Enabled() bool {
	return s.pinHash != ""
}

// VerifyPIN checks the supplied PIN against the configured hash
func (s *Service) VerifyPIN(pin string) error {
	if !s.Enabled() {
		return nil
	}
	if pin == "" {
		return ErrPINRequired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(pin)); err != nil {
		return ErrInvalidPIN
	}
	return nil
}

// HashPIN produces a bcrypt hash suitable for the service config
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
