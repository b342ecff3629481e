package bendybutt

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/zeebo/bencode"

	"github.com/ssb-ngi-pointer/go-bendy-butt/bfe"
)

const (
	messageLen  = 2
	payloadLen  = 5
	feedLen     = 2
	feedDataLen = 4
)

// Decode parses canonical message bytes using default Options.
func Decode(data []byte) (Msg, error) {
	return DecodeWithOptions(data, Options{})
}

// DecodeWithOptions parses canonical message bytes. It never returns a
// partially populated Msg: on error the Msg is the zero value.
func DecodeWithOptions(data []byte, opts Options) (Msg, error) {
	opts, err := opts.resolve()
	if err != nil {
		return Msg{}, err
	}
	if len(data) > opts.MaxMessageSize {
		return Msg{}, newError(KindRange, "BB-SIZE-002", "", fmt.Sprintf("message is %d bytes, limit %d", len(data), opts.MaxMessageSize))
	}
	root, err := frame(data, opts.MaxDepth)
	if err != nil {
		return Msg{}, wrapError(KindFraming, "BB-FRAME-001", "", "malformed framing", err)
	}
	msg, err := decodeMessage(root)
	if err != nil {
		return Msg{}, err
	}

	// Enforce canonical byte identity by re-encoding and comparing.
	again, err := EncodeWithOptions(msg, opts)
	if err != nil {
		return Msg{}, wrapError(KindCanonical, "BB-CANON-001", "", "decoded message does not re-encode", err)
	}
	if !bytes.Equal(again, data) {
		return Msg{}, newError(KindCanonical, "BB-CANON-002", "", "non-canonical message encoding")
	}
	return msg, nil
}

func decodeMessage(root bencode.RawMessage) (Msg, error) {
	if !isList(root) {
		return Msg{}, schemaError("BB-SCHEMA-001", "", messageLen, -1)
	}
	outer, err := elements(root, "")
	if err != nil {
		return Msg{}, err
	}
	if len(outer) != messageLen {
		return Msg{}, schemaError("BB-SCHEMA-001", "", messageLen, len(outer))
	}
	if !isList(outer[0]) {
		return Msg{}, schemaError("BB-SCHEMA-002", "payload", payloadLen, -1)
	}
	payload, err := elements(outer[0], "payload")
	if err != nil {
		return Msg{}, err
	}
	if len(payload) != payloadLen {
		return Msg{}, schemaError("BB-SCHEMA-002", "payload", payloadLen, len(payload))
	}

	var msg Msg
	prev, err := taggedField(payload[0], "previous", bfe.KindMessage, bfe.KindNil)
	if err != nil {
		return Msg{}, err
	}
	if prev.Kind == bfe.KindMessage {
		msg.Previous = string(prev.Payload)
	}
	if msg.Author, err = taggedString(payload[1], "author", bfe.KindFeed); err != nil {
		return Msg{}, err
	}
	if msg.Sequence, err = intField(payload[2], "sequence"); err != nil {
		return Msg{}, err
	}
	if msg.Timestamp, err = intField(payload[3], "timestamp"); err != nil {
		return Msg{}, err
	}
	if msg.Content, err = decodeContent(payload[4]); err != nil {
		return Msg{}, err
	}
	if msg.Signature, err = taggedString(outer[1], "signature", bfe.KindSignature); err != nil {
		return Msg{}, err
	}
	return msg, nil
}

func decodeContent(raw bencode.RawMessage) (Content, error) {
	switch {
	case isBytes(raw):
		box, err := taggedString(raw, "content", bfe.KindBox)
		if err != nil {
			return nil, err
		}
		return Private{Ciphertext: box}, nil
	case isList(raw):
		parts, err := elements(raw, "content")
		if err != nil {
			return nil, err
		}
		if len(parts) != feedLen || !isList(parts[0]) {
			break
		}
		fields, err := elements(parts[0], "content.data")
		if err != nil {
			return nil, err
		}
		if len(fields) != feedDataLen {
			return nil, schemaError("BB-SCHEMA-004", "content.data", feedDataLen, len(fields))
		}
		var feed Feed
		if feed.Data.FeedType, err = taggedString(fields[0], "content.feedType", bfe.KindString); err != nil {
			return nil, err
		}
		if feed.Data.Subfeed, err = taggedString(fields[1], "content.subfeed", bfe.KindFeed); err != nil {
			return nil, err
		}
		if feed.Data.Metafeed, err = taggedString(fields[2], "content.metafeed", bfe.KindFeed); err != nil {
			return nil, err
		}
		if feed.Data.Nonce, err = taggedString(fields[3], "content.nonce", bfe.KindBytes); err != nil {
			return nil, err
		}
		if feed.Signature, err = taggedString(parts[1], "content.signature", bfe.KindSignature); err != nil {
			return nil, err
		}
		return feed, nil
	}
	return nil, newError(KindContent, "BB-CONTENT-001", "content", fmt.Sprintf("%s matches neither private nor feed content", describe(raw)))
}

func taggedString(raw bencode.RawMessage, field string, kind bfe.Kind) (string, error) {
	v, err := taggedField(raw, field, kind)
	if err != nil {
		return "", err
	}
	return string(v.Payload), nil
}

func taggedField(raw bencode.RawMessage, field string, kinds ...bfe.Kind) (bfe.Value, error) {
	if !isBytes(raw) {
		return bfe.Value{}, newError(KindSchema, "BB-SCHEMA-003", field, fmt.Sprintf("expected tagged byte string, got %s", describe(raw)))
	}
	var s string
	if err := bencode.DecodeBytes(raw, &s); err != nil {
		return bfe.Value{}, wrapError(KindFraming, "BB-FRAME-001", field, "malformed byte string", err)
	}
	b := []byte(s)
	v, err := bfe.Expect(b, kinds...)
	if err == nil {
		return v, nil
	}
	var mismatch *bfe.MismatchError
	if errors.As(err, &mismatch) {
		e := wrapError(KindTag, "BB-TAG-001", field, "tag does not match field kind", err)
		e.ExpectedKind = mismatch.Want
		e.ActualTag = append([]byte(nil), mismatch.Tag[:]...)
		return bfe.Value{}, e
	}
	e := wrapError(KindTag, "BB-TAG-002", field, "invalid BFE value", err)
	e.ExpectedKind = append([]bfe.Kind(nil), kinds...)
	e.ActualTag = append([]byte(nil), b[:min(len(b), bfe.TagLen)]...)
	return bfe.Value{}, e
}

func intField(raw bencode.RawMessage, field string) (int64, error) {
	if !isInt(raw) || len(raw) < 2 {
		return 0, newError(KindInteger, "BB-INT-001", field, fmt.Sprintf("expected integer, got %s", describe(raw)))
	}
	var v int64
	if err := bencode.DecodeBytes(raw, &v); err != nil {
		digits := string(raw[1 : len(raw)-1])
		if _, perr := strconv.ParseInt(digits, 10, 64); errors.Is(perr, strconv.ErrRange) {
			return 0, wrapError(KindRange, "BB-RANGE-001", field, "integer out of range", perr)
		}
		return 0, wrapError(KindFraming, "BB-FRAME-001", field, "malformed integer", err)
	}
	return v, nil
}
