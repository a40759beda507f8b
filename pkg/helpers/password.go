package helpers

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor applied to every stored hash. Each
// increment roughly doubles the compute cost of a single hash operation.
const PasswordCost = 10

// HashPassword hashes the plain text password using bcrypt. The salt is
// generated per call, so hashing the same password twice yields different
// hashes.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
