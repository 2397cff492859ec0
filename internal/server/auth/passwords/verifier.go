// Package passwords checks plaintext passwords against stored verifiers.
// The stored form depends on the configured algorithm, so several verifiers
// are provided and one is chosen at startup.
package passwords

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
)

const (
	KindPlain    = "plain"
	KindSHA256   = "sha256"
	KindBcrypt   = "bcrypt"
	KindArgon2id = "argon2id"
)

// Verifier reports whether password matches the stored verifier.
// A mismatch is (false, nil); an error means the stored form is unusable.
type Verifier interface {
	Verify(password, stored string) (bool, error)
}

// New returns the verifier for kind. salt is only used by sha256.
func New(kind, salt string) (Verifier, error) {
	switch kind {
	case KindPlain, "":
		return plain{}, nil
	case KindSHA256:
		return saltedSHA256{salt: salt}, nil
	case KindBcrypt:
		return bcryptVerifier{}, nil
	case KindArgon2id:
		return argon2idVerifier{}, nil
	}
	return nil, fmt.Errorf("%w: unknown password verifier %q", common.ErrorConfiguration, kind)
}

type plain struct{}

func (plain) Verify(password, stored string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1, nil
}

type saltedSHA256 struct {
	salt string
}

// HashSHA256 renders hex(sha256(password + salt)).
func HashSHA256(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

func (v saltedSHA256) Verify(password, stored string) (bool, error) {
	want := HashSHA256(password, v.salt)
	return subtle.ConstantTimeCompare([]byte(want), []byte(stored)) == 1, nil
}

type bcryptVerifier struct{}

func (bcryptVerifier) Verify(password, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("bcrypt: %w", err)
}

type argon2idVerifier struct{}

func (argon2idVerifier) Verify(password, stored string) (bool, error) {
	return VerifyArgon2id(password, stored)
}
