// Package password hashes and checks user passwords with bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor, 2^10 rounds.
const Cost = 10

var (
	ErrMismatch = errors.New("password does not match")
	ErrFormat   = errors.New("stored hash is malformed")
)

type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: Cost}
}

// Hash returns a self-describing bcrypt string with a fresh random salt.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check compares plaintext against the salt and hash embedded in stored.
func (h *Hasher) Check(plaintext string, stored string) error {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errors.Join(ErrFormat, err)
	}
}

func (h *Hasher) Verify(plaintext string, stored string) bool {
	return h.Check(plaintext, stored) == nil
}
