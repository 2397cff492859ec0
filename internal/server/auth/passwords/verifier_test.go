package passwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/cryptox"
)

var cheap = cryptox.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16}

func TestNew_Unknown(t *testing.T) {
	_, err := New("md5", "")
	assert.ErrorIs(t, err, common.ErrorConfiguration)
}

func TestVerifiers(t *testing.T) {
	bc, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name   string
		kind   string
		salt   string
		stored string
	}{
		{"plain", KindPlain, "", "pw1"},
		{"default is plain", "", "", "pw1"},
		{"sha256", KindSHA256, "pepper", HashSHA256("pw1", "pepper")},
		{"bcrypt", KindBcrypt, "", string(bc)},
		{"argon2id", KindArgon2id, "", HashArgon2id("pw1", cheap)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.kind, tt.salt)
			require.NoError(t, err)

			ok, err := v.Verify("pw1", tt.stored)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = v.Verify("pw2", tt.stored)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestHashSHA256_Known(t *testing.T) {
	// sha256("password") with empty salt
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", HashSHA256("password", ""))
}

func TestSHA256_SaltMatters(t *testing.T) {
	v, err := New(KindSHA256, "a")
	require.NoError(t, err)
	ok, err := v.Verify("pw", HashSHA256("pw", "b"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcrypt_MalformedStored(t *testing.T) {
	v, err := New(KindBcrypt, "")
	require.NoError(t, err)
	_, err = v.Verify("pw", "not-a-bcrypt-hash")
	assert.Error(t, err)
}

func TestArgon2id_Format(t *testing.T) {
	h := HashArgon2id("pw", cheap)
	assert.Regexp(t, `^\$argon2id\$v=19\$m=1024,t=1,p=1\$[A-Za-z0-9+/]+\$[A-Za-z0-9+/]+$`, h)
	assert.NotEqual(t, h, HashArgon2id("pw", cheap), "salt must be random")
}

func TestArgon2id_Malformed(t *testing.T) {
	for _, s := range []string{
		"",
		"$argon2i$v=19$m=1,t=1,p=1$AAAA$AAAA",
		"$argon2id$v=18$m=1,t=1,p=1$AAAA$AAAA",
		"$argon2id$v=19$garbage$AAAA$AAAA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$AAAA",
		"$argon2id$v=19$m=1,t=1,p=1$AAAA$",
		"$argon2id$v=19$m=65536,t=1,p=0$c2FsdHNhbHQ$aGFzaGhhc2g",
		"$argon2id$v=19$m=65536,t=0,p=1$c2FsdHNhbHQ$aGFzaGhhc2g",
		"$argon2id$v=19$m=4,t=1,p=1$c2FsdHNhbHQ$aGFzaGhhc2g",
		"$argon2id$v=19$m=4194304,t=1,p=1$c2FsdHNhbHQ$aGFzaGhhc2g",
		"$argon2id$v=19$m=65536,t=100000,p=1$c2FsdHNhbHQ$aGFzaGhhc2g",
		"$argon2id$v=19$m=65536,t=1,p=300$c2FsdHNhbHQ$aGFzaGhhc2g",
	} {
		var err error
		require.NotPanics(t, func() { _, err = VerifyArgon2id("pw", s) }, s)
		assert.ErrorIs(t, err, ErrMalformedHash, s)
	}
}
