// Package auth provides authentication utilities including password hashing and JWT.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. These match the stored hashes from earlier deployments,
// so changing them invalidates every existing password.
const (
	saltBytes  = 16
	hashBytes  = 64
	iterations = 1000
)

// GenerateSalt returns a random per-user salt, hex encoded.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

// HashPassword derives a PBKDF2-SHA512 hash of the password with the given
// salt, hex encoded.
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, hashBytes, sha512.New)
	return hex.EncodeToString(key)
}

// SetPassword generates a fresh salt and the matching hash for a password.
func SetPassword(password string) (salt, hash string, err error) {
	salt, err = GenerateSalt()
	if err != nil {
		return "", "", err
	}
	return salt, HashPassword(password, salt), nil
}

// ValidPassword reports whether the password re-hashes to the stored hash.
// The comparison is constant time.
func ValidPassword(password, salt, hash string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
