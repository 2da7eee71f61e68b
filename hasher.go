package objecthash

import (
	"bytes"
	"encoding/hex"
	"math"
	"math/big"
	"strings"

	"github.com/minio/sha256-simd"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// entryPair is hash(key) || hash(value) for one object entry.
type entryPair [2 * DigestLength]byte

// Hasher computes ObjectHash digests. It holds only immutable configuration
// and is safe for concurrent use.
type Hasher struct {
	logger           *zap.Logger
	parallelism      int
	commonize        bool
	normalizeUnicode bool
	redactize        bool
}

// NewHasher returns a Hasher configured by opts. Without options it hashes
// values exactly as given, sequentially, without logging.
func NewHasher(opts ...Option) *Hasher {
	h := &Hasher{
		logger:      zap.NewNop(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var defaultHasher = NewHasher()

// Hash returns the digest of v using the default Hasher.
func Hash(v Value) (Digest, error) {
	return defaultHasher.Hash(v)
}

// Hash returns the digest of v. The tree either hashes completely or the
// call fails; the error names the path of the offending node.
func (h *Hasher) Hash(v Value) (Digest, error) {
	d, err := h.hashValue(v)
	if err != nil {
		return Digest{}, atPath(err, "$")
	}
	return d, nil
}

// HashBatch hashes independent documents, returning digests in input
// order. Documents are spread across goroutines when parallelism is set.
// The first failure aborts the batch and its path starts with the document
// index.
func (h *Hasher) HashBatch(values []Value) ([]Digest, error) {
	return h.hashChildren(values, func(i int) string {
		return "batch" + indexSegment(i) + ".$"
	})
}

func (h *Hasher) hashValue(v Value) (Digest, error) {
	switch v := v.(type) {
	case Null:
		return taggedDigest(KindNull), nil
	case Bool:
		if v {
			return taggedDigest(KindBool, []byte("1")), nil
		}
		return taggedDigest(KindBool, []byte("0")), nil
	case Int:
		if h.commonize {
			f, err := intToFloat(v)
			if err != nil {
				return Digest{}, err
			}
			return hashFloat(f)
		}
		return taggedDigest(KindInt, []byte(v.String())), nil
	case Float:
		return hashFloat(float64(v))
	case String:
		return h.hashString(string(v))
	case Array:
		return h.hashArray(v)
	case Object:
		return h.hashObject(v)
	case Redacted:
		if ce := h.logger.Check(zap.DebugLevel, "using embedded digest for redacted subtree"); ce != nil {
			ce.Write(zap.Stringer("digest", v.digest))
		}
		return v.digest, nil
	case nil:
		return Digest{}, newError(UnsupportedType, "nil value")
	default:
		return Digest{}, newError(UnsupportedType, "unsupported value type %T", v)
	}
}

func hashFloat(f float64) (Digest, error) {
	s, err := NormalizeFloat(f)
	if err != nil {
		return Digest{}, err
	}
	return taggedDigest(KindFloat, []byte(s)), nil
}

func (h *Hasher) hashString(s string) (Digest, error) {
	if h.redactize && strings.HasPrefix(s, RedactedPrefix) {
		d, err := Unredact(s)
		if err != nil {
			return Digest{}, err
		}
		if ce := h.logger.Check(zap.DebugLevel, "using embedded digest for redaction placeholder"); ce != nil {
			ce.Write(zap.Stringer("digest", d))
		}
		return d, nil
	}
	if h.normalizeUnicode {
		s = norm.NFC.String(s)
	}
	return taggedDigest(KindString, []byte(s)), nil
}

func (h *Hasher) hashArray(a Array) (Digest, error) {
	digests, err := h.hashChildren(a, indexSegment)
	if err != nil {
		return Digest{}, err
	}
	return taggedDigest(KindArray, lo.Map(digests, func(d Digest, _ int) []byte {
		return d.hash[:]
	})...), nil
}

func (h *Hasher) hashObject(o Object) (Digest, error) {
	keys := lo.Keys(o)
	slices.Sort(keys)

	keyDigests := make([]Digest, len(keys))
	seen := make(map[Digest]string, len(keys))
	for i, k := range keys {
		kd, err := h.hashString(k)
		if err != nil {
			return Digest{}, atPath(err, keySegment(k))
		}
		if prev, ok := seen[kd]; ok {
			return Digest{}, newError(DuplicateKey, "keys %q and %q hash identically", prev, k)
		}
		seen[kd] = k
		keyDigests[i] = kd
	}

	values := lo.Map(keys, func(k string, _ int) Value {
		return o[k]
	})
	valueDigests, err := h.hashChildren(values, func(i int) string {
		return keySegment(keys[i])
	})
	if err != nil {
		return Digest{}, err
	}

	pairs := make([]entryPair, len(keys))
	for i := range pairs {
		copy(pairs[i][:DigestLength], keyDigests[i].hash[:])
		copy(pairs[i][DigestLength:], valueDigests[i].hash[:])
	}
	slices.SortFunc(pairs, func(a, b entryPair) bool {
		return bytes.Compare(a[:], b[:]) < 0
	})

	if ce := h.logger.Check(zap.DebugLevel, "sorted object entries"); ce != nil {
		ce.Write(zap.Strings("pairs", lo.Map(pairs, func(p entryPair, _ int) string {
			return hex.EncodeToString(p[:])
		})))
	}

	return taggedDigest(KindObject, lo.Map(pairs, func(p entryPair, _ int) []byte {
		return p[:]
	})...), nil
}

// hashChildren hashes sibling subtrees, concurrently when parallelism
// allows. digests[i] always belongs to children[i].
func (h *Hasher) hashChildren(children []Value, segment func(int) string) ([]Digest, error) {
	digests := make([]Digest, len(children))
	if h.parallelism <= 1 || len(children) < 2 {
		for i, c := range children {
			d, err := h.hashValue(c)
			if err != nil {
				return nil, atPath(err, segment(i))
			}
			digests[i] = d
		}
		return digests, nil
	}

	var g errgroup.Group
	g.SetLimit(h.parallelism)
	for i, c := range children {
		i, c := i, c
		g.Go(func() error {
			d, err := h.hashValue(c)
			if err != nil {
				return atPath(err, segment(i))
			}
			digests[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return digests, nil
}

// taggedDigest is SHA-256(tag || payload...).
func taggedDigest(tag Kind, payload ...[]byte) Digest {
	hasher := sha256.New()
	hasher.Write([]byte{byte(tag)})
	for _, p := range payload {
		hasher.Write(p)
	}
	return newDigestFromSlice(hasher.Sum(nil))
}

func intToFloat(i Int) (float64, error) {
	f, _ := new(big.Float).SetInt(i.Big()).Float64()
	if math.IsInf(f, 0) {
		return 0, newError(NumericRange, "integer %s overflows float64", i)
	}
	return f, nil
}
