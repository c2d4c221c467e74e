package validate

import "github.com/redmonkez12/goals-api/internal/apperr"

const (
	NameMinLength     = 3
	NameMaxLength     = 120
	PasswordMinLength = 3
	PasswordMaxLength = 32
)

// UserID checks that id is present and a well-formed UUID.
func UserID(id string) error {
	if isBlank(id) {
		return apperr.InvalidUser("id required")
	}
	if !isIdentifier(id) {
		return apperr.InvalidUser("id not a valid identifier")
	}
	return nil
}

func Name(name string) error {
	if isBlank(name) {
		return apperr.InvalidUser("name required")
	}
	if !lengthBetween(name, NameMinLength, NameMaxLength) {
		return apperr.InvalidUser("name length out of range")
	}
	return nil
}

func Email(email string) error {
	if isBlank(email) {
		return apperr.InvalidUser("email required")
	}
	if !isEmail(email) {
		return apperr.InvalidUser("email format invalid")
	}
	return nil
}

// Password checks the plaintext password before it is hashed.
func Password(password string) error {
	if isBlank(password) {
		return apperr.InvalidUser("password required")
	}
	if !lengthBetween(password, PasswordMinLength, PasswordMaxLength) {
		return apperr.InvalidUser("password length out of range")
	}
	return nil
}
