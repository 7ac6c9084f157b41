// Package crypto wraps the password hashing primitives.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest from plaintext. bcrypt embeds
// a fresh salt on every call, so equal inputs produce distinct digests.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}

// ComparePassword checks plaintext against a stored digest. The comparison
// runs in constant time; a nil return means the password matches.
func ComparePassword(hash []byte, plain string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain))
}
