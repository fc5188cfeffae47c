package password

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const specialChars = "@$!%*?&"

// ErrPolicy names the full policy so handlers can surface it verbatim.
var ErrPolicy = errors.New("password must be at least 6 characters long and include at least one uppercase letter, one lowercase letter, one special character, and one number")

// Validate enforces the signup/reset password policy.
func Validate(pw string) error {
	if len(pw) < 6 {
		return ErrPolicy
	}

	var lower, upper, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	if !lower || !upper || !digit || !special {
		return ErrPolicy
	}
	return nil
}

func Hash(pw string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Compare reports whether pw matches hash.
func Compare(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
