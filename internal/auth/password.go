package auth

import "golang.org/x/crypto/bcrypt"

// Matches the work factor the stored hashes were created with.
const bcryptCost = 10

// HashPassword derives a salted bcrypt hash from the plaintext password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored hash. Any
// failure, including a malformed stored hash, is a mismatch rather than an
// error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
