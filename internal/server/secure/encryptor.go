// Package secure wraps opaque values handed to untrusted clients: the
// sessionToken returned from authenticate and the per-process server token.
package secure

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/cryptox"
)

// Credentials is the plaintext shape sealed into a sessionToken.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Encryptor seals and opens tokens with a server-held key.
// It is stateless after construction and safe for concurrent use.
type Encryptor struct {
	key []byte
}

// NewEncryptor derives the AES key from secret. An empty secret is a
// configuration error.
func NewEncryptor(secret string) (*Encryptor, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: secret key is empty", common.ErrorConfiguration)
	}
	return &Encryptor{key: cryptox.DeriveKey([]byte(secret))}, nil
}

func (e *Encryptor) Encrypt(plaintext []byte) (string, error) {
	return cryptox.Seal(plaintext, e.key)
}

// Decrypt returns common.ErrInvalidToken for anything Encrypt did not produce
// under the same key.
func (e *Encryptor) Decrypt(token string) ([]byte, error) {
	return cryptox.Open(token, e.key)
}

// EncryptCredentials seals the hex encoding of the JSON credentials, the
// same plaintext shape launchers already decode.
func (e *Encryptor) EncryptCredentials(login, password string) (string, error) {
	b, err := json.Marshal(Credentials{Login: login, Password: password})
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(b)

	h := make([]byte, hex.EncodedLen(len(b)))
	defer common.WipeByteArray(h)
	hex.Encode(h, b)

	return e.Encrypt(h)
}

func (e *Encryptor) DecryptCredentials(token string) (Credentials, error) {
	b, err := e.Decrypt(token)
	if err != nil {
		return Credentials{}, err
	}
	defer common.WipeByteArray(b)

	raw := make([]byte, hex.DecodedLen(len(b)))
	defer common.WipeByteArray(raw)
	if _, err := hex.Decode(raw, b); err != nil {
		return Credentials{}, common.ErrInvalidToken
	}

	var c Credentials
	if err := json.Unmarshal(raw, &c); err != nil {
		return Credentials{}, common.ErrInvalidToken
	}
	return c, nil
}
