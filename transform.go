package objecthash

import (
	"golang.org/x/text/unicode/norm"
)

// Commonize returns a copy of v with every integer replaced by the nearest
// float64, the "common JSON" form in which 1 and 1.0 are the same value.
// Integers beyond the float64 range fail with NumericRange.
func Commonize(v Value) (Value, error) {
	return transform(v, func(leaf Value) (Value, error) {
		i, ok := leaf.(Int)
		if !ok {
			return leaf, nil
		}
		f, err := intToFloat(i)
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	}, nil)
}

// NormalizeUnicode returns a copy of v with strings and object keys in NFC.
// Two keys that collapse to the same text fail with DuplicateKey.
func NormalizeUnicode(v Value) (Value, error) {
	return transform(v, func(leaf Value) (Value, error) {
		s, ok := leaf.(String)
		if !ok {
			return leaf, nil
		}
		return String(norm.NFC.String(string(s))), nil
	}, func(k string) string {
		return norm.NFC.String(k)
	})
}

func transform(v Value, leafFn func(Value) (Value, error), keyFn func(string) string) (Value, error) {
	out, err := mapLeaves(v, leafFn, keyFn)
	if err != nil {
		return nil, atPath(err, "$")
	}
	return out, nil
}

// mapLeaves rebuilds v, applying leafFn to every scalar and keyFn (if set)
// to every object key. Redacted leaves are passed to leafFn untouched.
func mapLeaves(v Value, leafFn func(Value) (Value, error), keyFn func(string) string) (Value, error) {
	switch v := v.(type) {
	case Array:
		out := make(Array, len(v))
		for i, e := range v {
			m, err := mapLeaves(e, leafFn, keyFn)
			if err != nil {
				return nil, atPath(err, indexSegment(i))
			}
			out[i] = m
		}
		return out, nil
	case Object:
		out := make(Object, len(v))
		for k, e := range v {
			m, err := mapLeaves(e, leafFn, keyFn)
			if err != nil {
				return nil, atPath(err, keySegment(k))
			}
			nk := k
			if keyFn != nil {
				nk = keyFn(k)
			}
			if _, dup := out[nk]; dup {
				return nil, newError(DuplicateKey, "key %q occurs twice after transformation", nk)
			}
			out[nk] = m
		}
		return out, nil
	case nil:
		return nil, newError(UnsupportedType, "nil value")
	default:
		return leafFn(v)
	}
}
