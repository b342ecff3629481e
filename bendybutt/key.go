package bendybutt

import (
	"encoding/base64"
	"fmt"

	"github.com/ssb-ngi-pointer/go-bendy-butt/cidutil"
)

// MessageSuffix terminates Bendy Butt message identifiers.
const MessageSuffix = ".bbmsg-v1"

// MessageKey returns the identifier of an encoded message, as used in the
// Previous field of its successor: "%" + base64(sha256(bytes)) + MessageSuffix.
func MessageKey(encoded []byte) (string, error) {
	canon, err := Canonicalize(encoded)
	if err != nil {
		return "", fmt.Errorf("canonical message required: %w", err)
	}
	digest, err := cidutil.SHA256(canon)
	if err != nil {
		return "", wrapError(KindCID, "BB-CID-001", "", "sha256 digest failed", err)
	}
	return "%" + base64.StdEncoding.EncodeToString(digest) + MessageSuffix, nil
}

// CID returns an IPFS-compatible CIDv1 (raw + sha2-256) for encoded message
// bytes. Input that is not canonical is rejected.
func CID(encoded []byte) (string, error) {
	canon, err := Canonicalize(encoded)
	if err != nil {
		return "", fmt.Errorf("canonical message required: %w", err)
	}
	id, err := cidutil.CIDv1RawSHA256(canon)
	if err != nil {
		return "", wrapError(KindCID, "BB-CID-002", "", "cid derivation failed", err)
	}
	return id, nil
}

// EncodeWithKey encodes msg and returns its bytes together with its key.
func EncodeWithKey(msg Msg) ([]byte, string, error) {
	b, err := Encode(msg)
	if err != nil {
		return nil, "", err
	}
	key, err := MessageKey(b)
	if err != nil {
		return nil, "", err
	}
	return b, key, nil
}
