package admin

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	ErrNotConfigured     = errors.New("admin access is not configured")
)

// Service verifies the admin passphrase against the hash injected at process
// start. No passphrase ever ships in client-deliverable code.
type Service struct {
	passwordHash string
}

func NewService(passwordHash string) *Service {
	return &Service{passwordHash: passwordHash}
}

// Authenticate checks the passphrase. A bcrypt hash is the expected
// configuration; a plain value is tolerated for local development and
// compared in constant time.
func (s *Service) Authenticate(passphrase string) error {
	if s.passwordHash == "" {
		return ErrNotConfigured
	}
	if looksLikeBcrypt(s.passwordHash) {
		if bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(passphrase)) != nil {
			return ErrInvalidPassphrase
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(s.passwordHash), []byte(passphrase)) != 1 {
		return ErrInvalidPassphrase
	}
	return nil
}

func looksLikeBcrypt(value string) bool {
	return len(value) > 4 && value[0:2] == "$2"
}
