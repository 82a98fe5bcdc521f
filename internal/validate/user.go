package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

const (
	MinUsernameLen   = 3
	MaxUsernameLen   = 80
	MaxEmailLen      = 120
	MaxPasswordBytes = 72 // bcrypt ignores anything past this
)

// CreateUser returns the normalized user (without digest) and the plaintext
// password that still has to be hashed.
func CreateUser(req transport.CreateUserRequest) (models.User, string, error) {
	switch {
	case req.Username == nil:
		return models.User{}, "", Missing("username")
	case req.Email == nil:
		return models.User{}, "", Missing("email")
	case req.Password == nil:
		return models.User{}, "", Missing("password")
	}

	username, err := Username(*req.Username)
	if err != nil {
		return models.User{}, "", err
	}
	email, err := Email(*req.Email)
	if err != nil {
		return models.User{}, "", err
	}
	if err := Password(*req.Password); err != nil {
		return models.User{}, "", err
	}

	return models.User{Username: username, Email: email}, *req.Password, nil
}

// UpdateUser applies req to cur. The returned password is nil when the
// request keeps the current one.
func UpdateUser(cur models.User, req transport.UpdateUserRequest) (models.User, *string, error) {
	switch {
	case req.Username == nil:
		return cur, nil, Missing("username")
	case req.Email == nil:
		return cur, nil, Missing("email")
	}

	username, err := Username(*req.Username)
	if err != nil {
		return cur, nil, err
	}
	email, err := Email(*req.Email)
	if err != nil {
		return cur, nil, err
	}
	if req.Password != nil {
		if err := Password(*req.Password); err != nil {
			return cur, nil, err
		}
	}

	cur.Username = username
	cur.Email = email
	return cur, req.Password, nil
}

func Username(v string) (string, error) {
	v = strings.TrimSpace(v)
	n := utf8.RuneCountInString(v)
	if n < MinUsernameLen {
		return "", OutOfRange("username", "username must be at least 3 characters long")
	}
	if n > MaxUsernameLen {
		return "", OutOfRange("username", "username must be at most 80 characters long")
	}
	return v, nil
}

func Email(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !strings.Contains(v, "@") {
		return "", BadFormat("email", "invalid email address")
	}
	if len(v) > MaxEmailLen {
		return "", OutOfRange("email", "email must be at most 120 characters long")
	}
	return v, nil
}

func Password(v string) error {
	if v == "" {
		return OutOfRange("password", "password cannot be empty")
	}
	if len(v) > MaxPasswordBytes {
		return OutOfRange("password", "password must be at most 72 bytes")
	}
	return nil
}
