package shared

import (
	"github.com/google/uuid"
)

// UserCredentials is the write-side view used to verify a login.
type UserCredentials struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
}
