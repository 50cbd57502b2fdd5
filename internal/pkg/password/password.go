package password

import (
	"dealstream/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty           = errs.New("password is empty")
	ErrPasswordTooLong = errs.New("password exceeds 72 bytes")
	ErrMismatch        = errs.New("password does not match")
)

// Cost is the bcrypt work factor for new hashes. Existing hashes carry their own.
const Cost = bcrypt.DefaultCost

// bcrypt ignores input past 72 bytes
const maxPasswordBytes = 72

func HashPassword(plain string) (string, error) {
	switch {
	case plain == "":
		return "", ErrEmpty
	case len(plain) > maxPasswordBytes:
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt hash")
	}
	return string(hashed), nil
}

// ComparePassword returns ErrMismatch for a wrong password and a wrapped error
// for a malformed hash.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmpty
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "bcrypt compare")
	}
}
