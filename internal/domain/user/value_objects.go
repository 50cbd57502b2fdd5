package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Username is the login identifier. Accounts are keyed by email address.
type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = NormalizeUsername(s)
	if !emailRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

// NormalizeUsername is the lookup form of a username: trimmed and lower-cased.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Credentials is a registration attempt that passed both checks.
type Credentials struct {
	Username Username
	Password Password
}

func NewCredentials(username, password string) (Credentials, error) {
	u, err := NewUsername(username)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Username: u, Password: p}, nil
}
