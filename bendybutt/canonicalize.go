package bendybutt

// Canonicalize is the single canonicalization choke point for message bytes.
//
// Message keys, CIDs and anything else derived from encoded bytes must pass
// through Canonicalize (directly or via MessageKey/CID). Non-canonical input
// is rejected, never repaired.
func Canonicalize(input []byte) ([]byte, error) {
	if _, err := Decode(input); err != nil {
		return nil, err
	}
	// The result never aliases input.
	return append([]byte(nil), input...), nil
}
