// Package bfe implements the subset of Binary Field Encodings (BFE) used by
// Bendy Butt messages.
//
// A BFE value is a two byte tag, (type, format), followed by a payload. The
// tag table is closed: Untag rejects any (type, format) pair it does not know,
// and Expect additionally rejects values whose kind differs from the caller's
// expectation. Callers should branch on Kind, never on raw tag bytes.
//
// Payloads are the identifier text itself ("@<base64>.bbfeed-v1"), with the
// format byte selected by the identifier's suffix. This is not byte-compatible
// with ssb-bfe, which stores the decoded key or hash bytes; encodings and
// message keys produced here do not match other Bendy Butt implementations.
package bfe

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the semantic type carried by a BFE tag.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFeed
	KindMessage
	KindSignature
	KindBox
	KindString
	KindNil
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindFeed:
		return "feed"
	case KindMessage:
		return "message"
	case KindSignature:
		return "signature"
	case KindBox:
		return "box"
	case KindString:
		return "string"
	case KindNil:
		return "nil"
	case KindBytes:
		return "bytes"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// TagLen is the length of every BFE tag.
const TagLen = 2

// Tag is a (type, format) pair.
type Tag [TagLen]byte

func (t Tag) Type() byte   { return t[0] }
func (t Tag) Format() byte { return t[1] }

func (t Tag) String() string {
	return fmt.Sprintf("%02x%02x", t[0], t[1])
}

var (
	ErrShort      = errors.New("bfe: value shorter than tag")
	ErrUnknownTag = errors.New("bfe: unknown type/format")
	ErrNilPayload = errors.New("bfe: nil value carries payload")
)

// MismatchError reports a well-formed BFE value of the wrong kind.
type MismatchError struct {
	Want []Kind
	Got  Kind
	Tag  Tag
}

func (e *MismatchError) Error() string {
	want := make([]string, 0, len(e.Want))
	for _, k := range e.Want {
		want = append(want, k.String())
	}
	return fmt.Sprintf("bfe: expected %s, got %s (tag %s)", strings.Join(want, " or "), e.Got, e.Tag)
}

// Value is a decoded BFE value. Payload aliases the input passed to Untag.
type Value struct {
	Kind    Kind
	Tag     Tag
	Payload []byte
}

// EncodeString tags the text of s as kind. The format is chosen by the
// longest registered suffix s ends with, otherwise the kind's default.
func EncodeString(kind Kind, s string) []byte {
	f, ok := lookupKind(kind)
	if !ok {
		panic(fmt.Sprintf("bfe: no tag for %s", kind))
	}
	format := f.def
	best := -1
	for _, ff := range f.formats {
		if ff.suffix != "" && len(ff.suffix) > best && strings.HasSuffix(s, ff.suffix) {
			format = ff.code
			best = len(ff.suffix)
		}
	}
	out := make([]byte, 0, TagLen+len(s))
	out = append(out, f.typ, format)
	return append(out, s...)
}

// Nil returns the BFE nil value.
func Nil() []byte {
	return []byte{typeGeneric, genericNil}
}

// Untag splits b into its tag and payload and resolves the tag's kind.
func Untag(b []byte) (Value, error) {
	if len(b) < TagLen {
		return Value{}, ErrShort
	}
	tag := Tag{b[0], b[1]}
	kind, ok := lookupTag(tag)
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	payload := b[TagLen:]
	if kind == KindNil && len(payload) != 0 {
		return Value{}, ErrNilPayload
	}
	return Value{Kind: kind, Tag: tag, Payload: payload}, nil
}

// Expect untags b and requires its kind to be one of kinds.
func Expect(b []byte, kinds ...Kind) (Value, error) {
	v, err := Untag(b)
	if err != nil {
		return Value{}, err
	}
	for _, k := range kinds {
		if v.Kind == k {
			return v, nil
		}
	}
	return Value{}, &MismatchError{Want: append([]Kind(nil), kinds...), Got: v.Kind, Tag: v.Tag}
}
