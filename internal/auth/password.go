package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash. The salt is random, so hashing
// the same plaintext twice yields different strings that both verify.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches hash. bcrypt compares in
// constant time; a malformed hash simply fails verification.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
