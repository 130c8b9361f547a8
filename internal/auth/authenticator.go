package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid table PIN")
	ErrWeakPIN            = errors.New("PIN must be at least 4 characters")
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping the table PIN for another method
// without changing the service layer code.
type Authenticator interface {
	// Authenticate verifies the credential.
	// Returns ErrInvalidCredentials if it does not match.
	Authenticate(ctx context.Context, credential string) error
}

// PINAuthenticator checks a shared table PIN against a bcrypt hash.
type PINAuthenticator struct {
	hash []byte
}

// NewPINAuthenticator creates an authenticator for the given bcrypt hash.
func NewPINAuthenticator(hash string) *PINAuthenticator {
	return &PINAuthenticator{hash: []byte(hash)}
}

// Authenticate compares the PIN with the stored hash.
func (a *PINAuthenticator) Authenticate(ctx context.Context, credential string) error {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPIN produces a bcrypt hash suitable for TABLE_PIN_HASH.
func HashPIN(pin string) (string, error) {
	if len(pin) < 4 {
		return "", ErrWeakPIN
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
