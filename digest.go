package objecthash

import (
	"bytes"

	"golang.org/x/exp/slices"
)

const (
	DigestLength       = 32
	DigestLengthInBits = DigestLength * 8
)

// Digest is the 32-byte ObjectHash of one value. It is comparable with ==
// and can be used as a map key.
type Digest struct {
	hash [DigestLength]byte
}

func newDigestFromSlice(word []byte) Digest {
	hash := *(*[DigestLength]byte)(word)
	return Digest{hash: hash}
}

// DigestFromBytes copies a raw 32-byte digest.
func DigestFromBytes(b []byte) (Digest, error) {
	if len(b) != DigestLength {
		return Digest{}, newError(MalformedDigest, "digest is %d bytes, want %d", len(b), DigestLength)
	}
	return newDigestFromSlice(b), nil
}

// Bytes returns a copy of the digest bytes.
func (d Digest) Bytes() []byte {
	return append([]byte(nil), d.hash[:]...)
}

func (d Digest) Array() [DigestLength]byte {
	return d.hash
}

func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Compare orders digests by unsigned byte comparison.
func (d Digest) Compare(other Digest) int {
	return bytes.Compare(d.hash[:], other.hash[:])
}

func (d Digest) Less(other Digest) bool {
	return d.Compare(other) < 0
}

func (d Digest) Hex() string {
	return ToHex(d)
}

func (d Digest) String() string {
	return ToHex(d)
}

func (d Digest) MarshalText() ([]byte, error) {
	return []byte(ToHex(d)), nil
}

func (d *Digest) UnmarshalText(text []byte) error {
	v, err := parseFullHex(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// SortDigests sorts ds in place, ascending.
func SortDigests(ds []Digest) {
	slices.SortFunc(ds, func(a, b Digest) bool {
		return a.Less(b)
	})
}
