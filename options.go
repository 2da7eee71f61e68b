package objecthash

import "go.uber.org/zap"

// Option configures a Hasher.
type Option func(*Hasher)

// WithLogger sets the logger used for debug tracing of object ordering and
// redaction substitution. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Hasher) {
		if logger == nil {
			logger = zap.NewNop()
		}
		h.logger = logger.Named("objecthash")
	}
}

// WithParallelism hashes the children of each array and object with up to
// n goroutines. Values below 2 keep hashing sequential. Digests are
// identical either way.
func WithParallelism(n int) Option {
	return func(h *Hasher) {
		if n < 1 {
			n = 1
		}
		h.parallelism = n
	}
}

// WithCommonize hashes integers as floats ("common JSON"), so 1 and 1.0
// produce the same digest.
func WithCommonize() Option {
	return func(h *Hasher) {
		h.commonize = true
	}
}

// WithUnicodeNormalization applies NFC to strings and object keys before
// hashing.
func WithUnicodeNormalization() Option {
	return func(h *Hasher) {
		h.normalizeUnicode = true
	}
}

// WithRedactionPlaceholders treats strings and object keys that begin with
// RedactedPrefix as redaction placeholders: the embedded digest is used in
// place of hashing the text. Use this when the tree comes from serialized
// documents that carry placeholders as plain strings.
func WithRedactionPlaceholders() Option {
	return func(h *Hasher) {
		h.redactize = true
	}
}
