package objecthash

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"
)

func TestDigestCIDRoundTrip(t *testing.T) {
	d := digestOf(t, Array{String("foo"), String("bar")})

	c := d.CID()
	require.Equal(t, uint64(1), c.Version())
	require.Equal(t, uint64(cid.Raw), c.Type())

	back, err := DigestFromCID(c)
	require.NoError(t, err)
	require.Equal(t, d, back)

	parsed, err := ParseCID(c.String())
	require.NoError(t, err)
	require.Equal(t, d, parsed)

	decoded, err := multihash.Decode(d.Multihash())
	require.NoError(t, err)
	require.Equal(t, uint64(multihash.SHA2_256), decoded.Code)
	require.Equal(t, d.Bytes(), decoded.Digest)
}

func TestDigestCIDMatchesTaggedPayload(t *testing.T) {
	d := digestOf(t, String("bar"))
	mh, err := multihash.Sum([]byte("ubar"), multihash.SHA2_256, -1)
	require.NoError(t, err)
	require.Equal(t, cid.NewCidV1(cid.Raw, mh), d.CID())
}

func TestDigestFromCIDErrors(t *testing.T) {
	_, err := DigestFromCID(cid.Undef)
	require.True(t, IsKind(err, MalformedDigest))

	mh, err := multihash.Sum([]byte("ubar"), multihash.SHA2_512, -1)
	require.NoError(t, err)
	_, err = DigestFromCID(cid.NewCidV1(cid.Raw, mh))
	require.True(t, IsKind(err, MalformedDigest))

	_, err = DigestFromMultihash([]byte{0x12})
	require.True(t, IsKind(err, MalformedDigest))

	_, err = ParseCID("not-a-cid")
	require.True(t, IsKind(err, MalformedDigest))
}
