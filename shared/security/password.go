package security

import (
	"errors"
	"strings"
	"sync"

	"github.com/matthewhartstonge/argon2"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for newly hashed passwords.
const BcryptCost = 10

const argon2Prefix = "$argon2"

var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("streamhub-timing-equalizer"), BcryptCost)
	return hash
})

// HashPassword hashes a password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the encoded hash.
// Both bcrypt hashes and argon2id hashes carried over from the previous
// auth service are accepted. An empty hash never matches.
func VerifyPassword(password, encoded string) (bool, error) {
	if encoded == "" {
		return false, nil
	}

	if strings.HasPrefix(encoded, argon2Prefix) {
		return argon2.VerifyEncoded([]byte(password), []byte(encoded))
	}

	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

// SimulatePasswordCheck burns the same time as a bcrypt comparison so that
// a missing account is indistinguishable from a wrong password.
func SimulatePasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
}

// NeedsRehash reports whether encoded should be replaced by a fresh bcrypt hash.
func NeedsRehash(encoded string) bool {
	if strings.HasPrefix(encoded, argon2Prefix) {
		return true
	}

	cost, err := bcrypt.Cost([]byte(encoded))
	return err != nil || cost < BcryptCost
}
