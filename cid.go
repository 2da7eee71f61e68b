package objecthash

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Multihash returns d as a sha2-256 multihash.
func (d Digest) Multihash() multihash.Multihash {
	mh, err := multihash.Encode(d.hash[:], multihash.SHA2_256)
	if err != nil {
		// Encode only fails for unknown codes.
		panic("objecthash: multihash encoding failed: " + err.Error())
	}
	return multihash.Multihash(mh)
}

// CID returns a CIDv1 (raw + sha2-256) addressing the tagged payload that
// produced d.
func (d Digest) CID() cid.Cid {
	return cid.NewCidV1(cid.Raw, d.Multihash())
}

// DigestFromMultihash accepts only 32-byte sha2-256 multihashes.
func DigestFromMultihash(mh []byte) (Digest, error) {
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return Digest{}, wrapError(MalformedDigest, err, "decoding multihash")
	}
	if decoded.Code != multihash.SHA2_256 {
		return Digest{}, newError(MalformedDigest, "multihash code %#x is not sha2-256", decoded.Code)
	}
	return DigestFromBytes(decoded.Digest)
}

func DigestFromCID(c cid.Cid) (Digest, error) {
	if !c.Defined() {
		return Digest{}, newError(MalformedDigest, "undefined CID")
	}
	return DigestFromMultihash(c.Hash())
}

// ParseCID decodes a CID string such as "bafkrei...".
func ParseCID(s string) (Digest, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return Digest{}, wrapError(MalformedDigest, err, "decoding CID %q", s)
	}
	return DigestFromCID(c)
}
