// Package apperr defines the closed set of expected failures the use cases
// can return. Anything that is not an *Error is an infrastructure failure
// coming from a collaborator and is passed through untouched.
package apperr

import "errors"

// Kind classifies an expected failure so callers can map it (e.g. to an
// HTTP status) without inspecting messages.
type Kind string

const (
	KindInvalidUser Kind = "invalid_user" // 400
	KindInvalidGoal Kind = "invalid_goal" // 400
	KindNotFound    Kind = "not_found"    // 404
	KindConflict    Kind = "conflict"     // 409
	KindMismatch    Kind = "mismatch"     // 401
)

const (
	msgEmailAlreadyTaken = "User e-mail is already registered and must be unique"
	msgPasswordNotMatch  = "Password is not a match to the password hash"
)

// Kind sentinels for errors.Is matching, e.g. errors.Is(err, apperr.ErrNotFound).
var (
	ErrInvalidUser = &Error{Kind: KindInvalidUser}
	ErrInvalidGoal = &Error{Kind: KindInvalidGoal}
	ErrNotFound    = &Error{Kind: KindNotFound}
	ErrConflict    = &Error{Kind: KindConflict}
	ErrMismatch    = &Error{Kind: KindMismatch}
)

// Error is an expected, caller-recoverable failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is reports a match when target is an *Error of the same kind with either
// no message (a kind sentinel) or the same message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func InvalidUser(msg string) *Error {
	return New(KindInvalidUser, msg)
}

func InvalidGoal(msg string) *Error {
	return New(KindInvalidGoal, msg)
}

func NotFound(msg string) *Error {
	return New(KindNotFound, msg)
}

// EmailAlreadyTaken is the conflict raised when an e-mail is already registered.
func EmailAlreadyTaken() *Error {
	return New(KindConflict, msgEmailAlreadyTaken)
}

// PasswordNotMatch is the mismatch raised when a password fails verification.
func PasswordNotMatch() *Error {
	return New(KindMismatch, msgPasswordNotMatch)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
