package objecthash

import (
	"math/big"
)

// Kind identifies a Value variant. For every variant that is hashed from
// its own payload the Kind is also the tag byte fed to the digest.
type Kind byte

const (
	KindNull   = Kind('n')
	KindBool   = Kind('b')
	KindInt    = Kind('i')
	KindFloat  = Kind('f')
	KindString = Kind('u')
	KindArray  = Kind('l')
	KindObject = Kind('d')

	// KindRedacted carries a precomputed digest and has no tag byte.
	KindRedacted = Kind(0)
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindRedacted:
		return "redacted"
	default:
		return "unknown"
	}
}

// Value is a node of a JSON-like value tree. The set of implementations is
// closed: Null, Bool, Int, Float, String, Array, Object and Redacted.
type Value interface {
	Kind() Kind
	isValue()
}

type Null struct{}

type Bool bool

// Int is an arbitrary-precision integer.
type Int struct {
	v *big.Int
}

type Float float64

// String holds UTF-8 text. It is hashed as raw bytes, no normalization is
// applied unless NormalizeUnicode is run first.
type String string

type Array []Value

// Object maps keys to values. Keys are unique by construction.
type Object map[string]Value

func (Null) Kind() Kind     { return KindNull }
func (Bool) Kind() Kind     { return KindBool }
func (Int) Kind() Kind      { return KindInt }
func (Float) Kind() Kind    { return KindFloat }
func (String) Kind() Kind   { return KindString }
func (Array) Kind() Kind    { return KindArray }
func (Object) Kind() Kind   { return KindObject }
func (Redacted) Kind() Kind { return KindRedacted }

func (Null) isValue()     {}
func (Bool) isValue()     {}
func (Int) isValue()      {}
func (Float) isValue()    {}
func (String) isValue()   {}
func (Array) isValue()    {}
func (Object) isValue()   {}
func (Redacted) isValue() {}

func NewInt(i int64) Int {
	return Int{v: big.NewInt(i)}
}

func NewUint(u uint64) Int {
	return Int{v: new(big.Int).SetUint64(u)}
}

// NewBigInt copies b.
func NewBigInt(b *big.Int) Int {
	return Int{v: new(big.Int).Set(b)}
}

// ParseInt parses base-10 integer text of any length. A leading '+' and
// leading zeros are accepted; the hashed form never carries them.
func ParseInt(s string) (Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, newError(UnsupportedType, "invalid integer text %q", s)
	}
	return Int{v: v}, nil
}

// Big returns a copy of the integer value. The zero Int is 0.
func (i Int) Big() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.v)
}

// String returns the canonical decimal text: no leading zeros, '-' only when
// negative.
func (i Int) String() string {
	if i.v == nil {
		return "0"
	}
	return i.v.String()
}
