package passwords

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/cryptox"
)

const saltSize = 16

// Upper bounds on cost parameters read back from storage.
const (
	maxArgon2Memory = 1 << 20 // KiB
	maxArgon2Time   = 64
	maxArgon2KeyLen = 1024
)

var ErrMalformedHash = errors.New("malformed argon2id hash")

var b64 = base64.RawStdEncoding

// HashArgon2id produces a PHC string:
// $argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
func HashArgon2id(password string, p cryptox.Argon2Params) string {
	salt := common.GenerateRandByteArray(saltSize)
	key := cryptox.Argon2ID([]byte(password), salt, p)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads, b64.EncodeToString(salt), b64.EncodeToString(key))
}

// VerifyArgon2id checks password against a PHC string from HashArgon2id.
func VerifyArgon2id(password, stored string) (bool, error) {
	parts := strings.Split(stored, "$")
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrMalformedHash
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	var p cryptox.Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return false, ErrMalformedHash
	}
	if p.Time < 1 || p.Time > maxArgon2Time || p.Threads < 1 || p.Memory < 8*uint32(p.Threads) || p.Memory > maxArgon2Memory {
		return false, fmt.Errorf("%w: cost m=%d,t=%d,p=%d out of range", ErrMalformedHash, p.Memory, p.Time, p.Threads)
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := b64.DecodeString(parts[5])
	if err != nil || len(want) == 0 || len(want) > maxArgon2KeyLen {
		return false, ErrMalformedHash
	}
	p.KeyLen = uint32(len(want))

	got := cryptox.Argon2ID([]byte(password), salt, p)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
