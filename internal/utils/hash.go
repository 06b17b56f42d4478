package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters for password hashing. Changing any of them
// invalidates every stored hash.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	saltLen = 16
)

// GenerateSalt returns a random base64-encoded salt for a new account.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	return base64.RawStdEncoding.EncodeToString(salt), nil
}

// HashPassword derives the stored password hash with argon2id over
// password+pepper and the user's salt. The result is base64-encoded.
//
// Example usage:
//
//	hash := utils.HashPassword("secret", user.Salt, cfg.PasswordPepper)
func HashPassword(password, salt, pepper string) string {
	key := argon2.IDKey([]byte(password+pepper), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.RawStdEncoding.EncodeToString(key)
}

// ComparePassword reports whether password matches hash in constant time.
func ComparePassword(password, salt, pepper, hash string) bool {
	computed := HashPassword(password, salt, pepper)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
