package bendybutt

import (
	"fmt"

	"github.com/zeebo/bencode"

	"github.com/ssb-ngi-pointer/go-bendy-butt/bfe"
)

// Encode returns the canonical bytes of msg using default Options.
func Encode(msg Msg) ([]byte, error) {
	return EncodeWithOptions(msg, Options{})
}

// EncodeWithOptions returns the canonical bytes of msg. It fails only for a
// missing or foreign Content value, or when the result exceeds
// opts.MaxMessageSize.
func EncodeWithOptions(msg Msg, opts Options) ([]byte, error) {
	opts, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	payload, err := payloadValue(msg)
	if err != nil {
		return nil, err
	}
	out, err := marshal([]any{payload, tagged(bfe.KindSignature, msg.Signature)})
	if err != nil {
		return nil, err
	}
	if len(out) > opts.MaxMessageSize {
		return nil, newError(KindRange, "BB-SIZE-001", "", fmt.Sprintf("encoded message is %d bytes, limit %d", len(out), opts.MaxMessageSize))
	}
	return out, nil
}

// SignedBytes returns the encoded payload list of msg, the bytes covered by
// Msg.Signature.
func SignedBytes(msg Msg) ([]byte, error) {
	payload, err := payloadValue(msg)
	if err != nil {
		return nil, err
	}
	return marshal(payload)
}

// payloadValue builds the payload list. Byte strings are Go strings and
// integers int64, the shapes the bencode encoder writes canonically.
func payloadValue(msg Msg) ([]any, error) {
	content, err := contentValue(msg.Content)
	if err != nil {
		return nil, err
	}
	return []any{
		previousValue(msg.Previous),
		tagged(bfe.KindFeed, msg.Author),
		msg.Sequence,
		msg.Timestamp,
		content,
	}, nil
}

func previousValue(previous string) string {
	if previous == NoPrevious {
		return string(bfe.Nil())
	}
	return tagged(bfe.KindMessage, previous)
}

func contentValue(c Content) (any, error) {
	switch c := c.(type) {
	case Private:
		return tagged(bfe.KindBox, c.Ciphertext), nil
	case Feed:
		return []any{
			[]any{
				tagged(bfe.KindString, c.Data.FeedType),
				tagged(bfe.KindFeed, c.Data.Subfeed),
				tagged(bfe.KindFeed, c.Data.Metafeed),
				tagged(bfe.KindBytes, c.Data.Nonce),
			},
			tagged(bfe.KindSignature, c.Signature),
		}, nil
	case nil:
		return nil, newError(KindSchema, "BB-SCHEMA-010", "content", "missing content")
	default:
		return nil, newError(KindSchema, "BB-SCHEMA-011", "content", fmt.Sprintf("unsupported content type %T", c))
	}
}

func tagged(kind bfe.Kind, s string) string {
	return string(bfe.EncodeString(kind, s))
}

func marshal(v any) ([]byte, error) {
	out, err := bencode.EncodeBytes(v)
	if err != nil {
		return nil, wrapError(KindInternal, "BB-INTERNAL-001", "", "bencode marshal failed", err)
	}
	return out, nil
}
