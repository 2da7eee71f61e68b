package objecthash

import "encoding/hex"

// DigestHexLength is the number of nibbles in a digest.
const DigestHexLength = DigestLength * 2

// ToHex returns the lowercase, fixed-width hex encoding of d.
func ToHex(d Digest) string {
	return hex.EncodeToString(d.hash[:])
}

// FromHex decodes a hex digest. Input is case-insensitive. An odd number of
// nibbles is completed with a leading zero nibble and short input is
// zero-padded on the most significant side, so "123" decodes to
// 0x00...0123.
func FromHex(s string) (Digest, error) {
	if len(s) > DigestHexLength {
		return Digest{}, newError(MalformedHex, "hex digest has %d characters, at most %d allowed", len(s), DigestHexLength)
	}
	padded := s
	if len(padded)%2 == 1 {
		padded = "0" + padded
	}
	b, err := hex.DecodeString(padded)
	if err != nil {
		return Digest{}, wrapError(MalformedHex, err, "invalid hex digest %q", s)
	}
	var d Digest
	copy(d.hash[DigestLength-len(b):], b)
	return d, nil
}

// parseFullHex accepts only the canonical width of DigestHexLength nibbles.
func parseFullHex(s string) (Digest, error) {
	if len(s) != DigestHexLength {
		return Digest{}, newError(MalformedHex, "hex digest has %d characters, want %d", len(s), DigestHexLength)
	}
	return FromHex(s)
}
