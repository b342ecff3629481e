package bendybutt

import (
	"errors"

	"github.com/ssb-ngi-pointer/go-bendy-butt/bfe"
)

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	KindFraming   Kind = "MalformedFraming"
	KindSchema    Kind = "SchemaMismatch"
	KindTag       Kind = "BfeTagMismatch"
	KindInteger   Kind = "NotAnInteger"
	KindContent   Kind = "UnknownContentShape"
	KindRange     Kind = "ValueOutOfRange"
	KindCanonical Kind = "NonCanonical"
	KindConfig    Kind = "Config"
	KindCID       Kind = "CID"
	KindInternal  Kind = "Internal"
)

// Error is the package's structured error type.
//
// Field names the message field concerned ("author", "content.nonce", ...),
// or is empty for whole-message failures. Expected/Found carry element
// counts for KindSchema (Found is -1 when the value is not a list).
// ExpectedKind/ActualTag are set for KindTag.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Field   string
	Message string

	Expected int
	Found    int

	ExpectedKind []bfe.Kind
	ActualTag    []byte

	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "bendybutt: "
	if e.Field != "" {
		msg += e.Field + ": "
	}
	msg += e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, field, msg string) *Error {
	return &Error{Kind: kind, RuleID: ruleID, Field: field, Message: msg}
}

func wrapError(kind Kind, ruleID, field, msg string, cause error) *Error {
	e := newError(kind, ruleID, field, msg)
	e.Cause = cause
	return e
}

func schemaError(ruleID, field string, expected, found int) *Error {
	msg := "expected list"
	e := newError(KindSchema, ruleID, field, msg)
	e.Expected = expected
	e.Found = found
	if found >= 0 {
		e.Message = "wrong element count"
	}
	return e
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
