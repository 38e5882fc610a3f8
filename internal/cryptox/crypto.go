// Package cryptox turns passwords into stored verifiers and checks them.
//
// A password is stretched with argon2id over a per-account random salt; the
// stored verifier is SHA-256 of the derived key, so the key itself is never
// persisted.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/pocketauth/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length in bytes of salts produced by NewCredential.
const SaltSize = 16

// Params are argon2id cost parameters.
type Params struct {
	Time    uint32 `json:"t"`
	Memory  uint32 `json:"m"` // KiB
	Threads uint8  `json:"p"`
	KeyLen  uint32 `json:"l"`
}

// DefaultParams are used for real accounts.
var DefaultParams = Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}

// FastParams are cheap parameters for tests.
var FastParams = Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 32}

func DeriveKey(password, salt []byte, p Params) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// NewCredential generates a fresh salt and returns it with the verifier for
// password.
func NewCredential(password []byte, p Params) (salt, verifier []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	key := DeriveKey(password, salt, p)
	defer common.WipeByteArray(key)
	return salt, MakeVerifier(key)
}

// Verify reports whether password produces verifier under salt. The
// comparison is constant-time.
func Verify(password, salt, verifier []byte, p Params) bool {
	if len(salt) == 0 || len(verifier) == 0 {
		return false
	}
	key := DeriveKey(password, salt, p)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(MakeVerifier(key), verifier) == 1
}

// EqualPlain compares two plaintext secrets in constant time.
func EqualPlain(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
