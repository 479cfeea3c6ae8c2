// Package cryptox implements the per-identity password credentials: an
// argon2id-derived key, reduced to a sha256 verifier, checked in constant
// time.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/medmate/medmate/internal/common"
	"golang.org/x/crypto/argon2"
)

const SaltSize = 32

// Params are the argon2id cost parameters.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultParams matches the RFC 9106 second recommended option with a
// single pass.
var DefaultParams = Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}

// Credential is what is stored for an identity instead of its password.
type Credential struct {
	Salt     []byte
	Verifier []byte
}

func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

func DeriveKey(password, salt []byte, p Params) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

// Argon2Hasher issues and checks Credentials.
type Argon2Hasher struct {
	Params Params
}

func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{Params: DefaultParams}
}

// Hash derives a credential for password under a fresh random salt.
func (h *Argon2Hasher) Hash(password []byte) Credential {
	salt := common.GenerateRandByteArray(SaltSize)
	key := DeriveKey(password, salt, h.Params)
	defer common.WipeByteArray(key)
	return Credential{Salt: salt, Verifier: MakeVerifier(key)}
}

// Verify reports whether password matches c. The verifier comparison is
// constant time.
func (h *Argon2Hasher) Verify(c Credential, password []byte) bool {
	if len(c.Salt) == 0 || len(c.Verifier) == 0 {
		return false
	}
	key := DeriveKey(password, c.Salt, h.Params)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(c.Verifier, MakeVerifier(key)) == 1
}
