package secure

import (
	"sync"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
)

// TokenIssuer holds a random secret generated once per process and its
// encrypted form, which is computed on first request and then reused.
type TokenIssuer struct {
	token     string
	encrypted func() (string, error)
}

// NewTokenIssuer generates the process secret. It is never persisted.
func NewTokenIssuer(enc *Encryptor) (*TokenIssuer, error) {
	token, err := common.MakeRandHexString(common.ServerTokenSize)
	if err != nil {
		return nil, err
	}

	t := &TokenIssuer{token: token}
	t.encrypted = sync.OnceValues(func() (string, error) {
		return enc.Encrypt([]byte(token))
	})
	return t, nil
}

// Token is the raw hex secret.
func (t *TokenIssuer) Token() string {
	return t.token
}

// EncryptedToken returns the sealed secret. The first caller performs the
// encryption; concurrent callers wait for it and all see the same value.
func (t *TokenIssuer) EncryptedToken() (string, error) {
	return t.encrypted()
}
