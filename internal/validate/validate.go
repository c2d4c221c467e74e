// Package validate holds the field rules for users and goals. Every function
// is pure: it inspects one value and returns nil or an *apperr.Error.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// fields is safe for concurrent use and caches nothing per call.
var fields = validator.New()

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func isIdentifier(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func isEmail(s string) bool {
	return fields.Var(s, "email") == nil
}
