// Package cryptox holds the symmetric primitives LaunchKeeper relies on:
// AES-256-GCM sealing of opaque byte strings into URL-safe tokens, and
// argon2id key derivation for stored password verifiers.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// KeySize is the AES-256 key length.
const KeySize = 32

var tokenEncoding = base64.RawURLEncoding

// DeriveKey stretches arbitrary secret material into an AES-256 key.
// The secret is expected to carry enough entropy already; this only fixes the length.
func DeriveKey(secret []byte) []byte {
	sum := sha256.Sum256(secret)
	return sum[:]
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with AES-GCM under key and returns
// base64url(nonce || ciphertext || tag). Every call uses a fresh random nonce,
// so sealing the same plaintext twice yields different tokens.
func Seal(plaintext, key []byte) (string, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("cipher init: %w", err)
	}

	nonce := make([]byte, aesgcm.NonceSize(), aesgcm.NonceSize()+len(plaintext)+aesgcm.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}

	sealed := aesgcm.Seal(nonce, nonce, plaintext, nil)
	return tokenEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. Malformed, truncated or tampered tokens, as well as a
// wrong key, all yield common.ErrInvalidToken.
func Open(token string, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("cipher init: %w", err)
	}

	raw, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if len(raw) < aesgcm.NonceSize()+aesgcm.Overhead() {
		return nil, common.ErrInvalidToken
	}

	nonce, ciphertext := raw[:aesgcm.NonceSize()], raw[aesgcm.NonceSize():]
	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// Argon2Params are the argon2id cost parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params is the cost applied to newly hashed verifiers.
var DefaultArgon2Params = Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}

// Argon2ID derives a key from password and salt.
func Argon2ID(password, salt []byte, p Argon2Params) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}
