// Package cryptox hashes and verifies account passwords for the development
// backend.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32
)

// DeriveKey stretches password with salt using Argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// PasswordHash is a salted Argon2id digest of a password.
type PasswordHash struct {
	Salt []byte
	Key  []byte
}

// HashPassword derives a PasswordHash from password with a fresh random salt.
func HashPassword(password string) PasswordHash {
	salt := common.GenerateRandByteArray(SaltSize)
	return PasswordHash{Salt: salt, Key: DeriveKey([]byte(password), salt)}
}

// Verify reports whether password matches h. The comparison is constant-time.
func (h PasswordHash) Verify(password string) bool {
	if len(h.Salt) == 0 || len(h.Key) == 0 {
		return false
	}
	key := DeriveKey([]byte(password), h.Salt)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(key, h.Key) == 1
}
