package errors

import (
	"errors"
	"fmt"
)

// Kind groups domain errors by how callers should react to them.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindForbidden
	KindInvalidFormat
	KindInvalidArgument
	KindNotRolledYet
	KindNumberMismatch
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindInvalidFormat:
		return "invalid_format"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotRolledYet:
		return "not_rolled_yet"
	case KindNumberMismatch:
		return "number_mismatch"
	default:
		return "internal"
	}
}

// Error is a domain failure with a stable machine-readable reason.
type Error struct {
	Kind   Kind
	Reason string
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

// Is matches on reason, so a detailed copy produced by WithMsg still
// compares equal to its sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// WithMsg returns a copy of e carrying a more specific message.
func (e *Error) WithMsg(format string, args ...any) *Error {
	return &Error{Kind: e.Kind, Reason: e.Reason, Msg: fmt.Sprintf(format, args...)}
}

func New(kind Kind, reason, msg string) *Error {
	return &Error{Kind: kind, Reason: reason, Msg: msg}
}

var (
	ErrNotFound        = New(KindNotFound, "NOT_FOUND", "record not found")
	ErrUserNotFound    = New(KindNotFound, "USER_NOT_FOUND", "user not found")
	ErrMatchNotFound   = New(KindNotFound, "MATCH_NOT_FOUND", "match not found")
	ErrRequestNotFound = New(KindNotFound, "REQUEST_NOT_FOUND", "friend request not found")
	ErrNotBanned       = New(KindNotFound, "NOT_BANNED", "user is not banned")

	ErrAlreadyFriends   = New(KindConflict, "ALREADY_FRIENDS", "already friends")
	ErrAlreadyRequested = New(KindConflict, "ALREADY_REQUESTED", "friend request already pending")
	ErrRequestClosed    = New(KindConflict, "REQUEST_CLOSED", "friend request was already rejected")
	ErrAlreadySelected  = New(KindConflict, "ALREADY_SELECTED", "dice partner already selected today")
	ErrAlreadyBanned    = New(KindConflict, "ALREADY_BANNED", "user is already banned")

	ErrForbidden = New(KindForbidden, "FORBIDDEN", "forbidden")
	ErrBlocked   = New(KindForbidden, "BLOCKED", "a block exists between these users")
	ErrBanned    = New(KindForbidden, "BANNED", "account is banned")

	// ErrBlacklisted tells the caller to revoke the external identity too.
	ErrBlacklisted      = New(KindForbidden, "EMAIL_BLACKLISTED", "this email is permanently banned")
	ErrIdentityConflict = New(KindForbidden, "IDENTITY_CONFLICT", "email is linked to another identity")

	ErrInvalidFormat = New(KindInvalidFormat, "INVALID_FORMAT", "email does not match the institutional format")

	ErrNotRolledYet   = New(KindNotRolledYet, "NOT_ROLLED_YET", "roll the dice first")
	ErrNumberMismatch = New(KindNumberMismatch, "NUMBER_MISMATCH", "dice numbers do not match")
)

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Invalid builds an InvalidArgument error for bad input.
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Reason: "INVALID_ARGUMENT", Msg: fmt.Sprintf(format, args...)}
}
