package types

import (
	"errors"
	"fmt"
)

// Kind classifies every error surfaced by this library and its codec
// collaborators. The set is closed: callers switch on the kind, not on
// per-call-site error types.
type Kind uint8

const (
	// Corrupt means the integrity of supplied ciphertext or data is
	// violated. There is no recovery; the error is surfaced immediately.
	// This library never raises Corrupt itself but propagates it
	// unchanged when received from a collaborator.
	Corrupt Kind = iota + 1

	// Invalid means a caller-supplied parameter or format is
	// unacceptable, e.g. a length overflow or an unrecognized codec
	// format.
	Invalid

	// Bug means an internal invariant was violated. It indicates a
	// defect in this library, not a data problem, and is raised via
	// panic rather than returned.
	Bug

	// NotReady means a dependent subsystem (e.g. a randomness source)
	// is not initialized. Raised only by external collaborators.
	NotReady
)

func (k Kind) String() string {
	switch k {
	case Corrupt:
		return "corrupt"
	case Invalid:
		return "invalid"
	case Bug:
		return "bug"
	case NotReady:
		return "not ready"
	default:
		return fmt.Sprintf("unknown kind %d", uint8(k))
	}
}

// Error is a categorized error with a message payload.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Is lets errors.Is match any *Error of the same kind, so callers can
// test err against e.g. &Error{Kind: Invalid} without caring about the
// message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

// Corruptf returns a Corrupt error with a formatted message.
func Corruptf(format string, args ...any) *Error {
	return &Error{Kind: Corrupt, Msg: fmt.Sprintf(format, args...)}
}

// Invalidf returns an Invalid error with a formatted message.
func Invalidf(format string, args ...any) *Error {
	return &Error{Kind: Invalid, Msg: fmt.Sprintf(format, args...)}
}

// Bugf returns a Bug error with a formatted message. Callers are
// expected to panic with the result: a Bug is a process-fatal defect.
func Bugf(format string, args ...any) *Error {
	return &Error{Kind: Bug, Msg: fmt.Sprintf(format, args...)}
}

// NotReadyf returns a NotReady error with a formatted message.
func NotReadyf(format string, args ...any) *Error {
	return &Error{Kind: NotReady, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err, or any error it wraps, carries kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
