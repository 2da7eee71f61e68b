package objecthash

import "strings"

// RedactedPrefix starts every serialized redaction placeholder.
const RedactedPrefix = "**REDACTED**"

// Redacted stands in for a subtree whose digest is already known. Hashing a
// Redacted yields that digest unchanged, so replacing a subtree S with
// NewRedacted(hash(S)) leaves the digest of every enclosing value intact.
type Redacted struct {
	digest Digest
}

func NewRedacted(d Digest) Redacted {
	return Redacted{digest: d}
}

// RedactValue hashes v with the default Hasher and wraps the result.
func RedactValue(v Value) (Redacted, error) {
	return defaultHasher.RedactValue(v)
}

func (h *Hasher) RedactValue(v Value) (Redacted, error) {
	d, err := h.Hash(v)
	if err != nil {
		return Redacted{}, err
	}
	return NewRedacted(d), nil
}

// ParseRedacted decodes a placeholder string into a Redacted leaf.
func ParseRedacted(text string) (Redacted, error) {
	d, err := Unredact(text)
	if err != nil {
		return Redacted{}, err
	}
	return NewRedacted(d), nil
}

func (r Redacted) Digest() Digest {
	return r.digest
}

// String returns the placeholder text.
func (r Redacted) String() string {
	return Redact(r.digest)
}

// Redact returns the placeholder text for d.
func Redact(d Digest) string {
	return RedactedPrefix + ToHex(d)
}

// Unredact extracts the digest from a placeholder. The suffix must be
// exactly DigestHexLength hex characters.
func Unredact(text string) (Digest, error) {
	if !strings.HasPrefix(text, RedactedPrefix) {
		return Digest{}, newError(MalformedRedaction, "missing %s prefix", RedactedPrefix)
	}
	d, err := parseFullHex(strings.TrimPrefix(text, RedactedPrefix))
	if err != nil {
		return Digest{}, wrapError(MalformedRedaction, err, "invalid redacted digest")
	}
	return d, nil
}
