package bendybutt

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/zeebo/bencode"
)

var (
	errDepthExceeded = errors.New("nesting depth exceeded")
	errStringLength  = errors.New("string length exceeds input")
	errTruncated     = errors.New("unexpected end of input")
	errTrailingData  = errors.New("trailing data after message")
)

// preflight walks the token stream of data without decoding it, so that the
// bencode decoder never allocates a string longer than the input and never
// nests deeper than maxDepth. Anything else is left to the decoder.
func preflight(data []byte, maxDepth int) error {
	depth := 0
	for i := 0; i < len(data); {
		switch c := data[i]; {
		case c == 'l' || c == 'd':
			depth++
			if depth > maxDepth {
				return errDepthExceeded
			}
			i++
		case c == 'e':
			depth--
			i++
		case c == 'i':
			j := bytes.IndexByte(data[i:], 'e')
			if j < 0 {
				return errTruncated
			}
			i += j + 1
		case c >= '0' && c <= '9':
			j := bytes.IndexByte(data[i:], ':')
			if j < 0 {
				return errTruncated
			}
			n, err := strconv.Atoi(string(data[i : i+j]))
			if err != nil || n > len(data)-(i+j+1) {
				return errStringLength
			}
			i += j + 1 + n
		default:
			return nil
		}
	}
	return nil
}

// frame decodes data as exactly one bencoded value and returns its raw bytes.
func frame(data []byte, maxDepth int) (bencode.RawMessage, error) {
	if err := preflight(data, maxDepth); err != nil {
		return nil, err
	}
	var raw bencode.RawMessage
	if err := bencode.DecodeBytes(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) != len(data) {
		return nil, errTrailingData
	}
	return raw, nil
}

func isList(raw bencode.RawMessage) bool  { return len(raw) > 0 && raw[0] == 'l' }
func isInt(raw bencode.RawMessage) bool   { return len(raw) > 0 && raw[0] == 'i' }
func isBytes(raw bencode.RawMessage) bool { return len(raw) > 0 && raw[0] >= '0' && raw[0] <= '9' }

// describe names the bencode type of raw for error messages.
func describe(raw bencode.RawMessage) string {
	switch {
	case isList(raw):
		return "list"
	case isInt(raw):
		return "integer"
	case isBytes(raw):
		return "byte string"
	case len(raw) > 0 && raw[0] == 'd':
		return "dictionary"
	default:
		return "invalid value"
	}
}

// elements decodes the direct children of a list value.
func elements(raw bencode.RawMessage, field string) ([]bencode.RawMessage, error) {
	var out []bencode.RawMessage
	if err := bencode.DecodeBytes(raw, &out); err != nil {
		return nil, wrapError(KindFraming, "BB-FRAME-001", field, "malformed list", err)
	}
	return out, nil
}
