package entity

import "time"

// User is the sole aggregate in the system. PasswordHash holds the bcrypt
// hash of the password; the plaintext is never stored or logged. Users are
// immutable once created: there is no rename, update, or delete operation.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
