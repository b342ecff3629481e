package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec
// and a sha2-256 multihash.
func CIDv1RawSHA256(data []byte) (string, error) {
	id, err := CIDv1RawSHA256CID(data)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// CIDv1RawSHA256CID returns a CIDv1 (raw + sha2-256) derived from data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// SHA256 returns the bare sha2-256 digest of data, as carried inside the
// multihash used for CIDs.
func SHA256(data []byte) ([]byte, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return nil, err
	}
	dec, err := multihash.Decode(sum)
	if err != nil {
		return nil, err
	}
	return dec.Digest, nil
}
