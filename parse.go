package objecthash

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var cborDecMode cbor.DecMode

func init() {
	var err error
	cborDecMode, err = cbor.DecOptions{
		// Values are always decoded into any; maps must come back string-keyed.
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}.DecMode()
	if err != nil {
		panic("objecthash: CBOR decoder initialization failed: " + err.Error())
	}
}

// ParseJSON decodes one JSON document into a Value. Comments and trailing
// commas are tolerated. Numbers written with a fraction or exponent become
// Float, all others become arbitrary-precision Int. Duplicate keys keep the
// last occurrence. Decoding failures are reported with kind Parse.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, wrapError(Parse, err, "decoding JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, newError(Parse, "unexpected data after JSON value")
	}
	return FromAny(raw)
}

// ParseCBOR decodes one CBOR data item into a Value. Byte strings and tags
// other than bignums are not part of the value model and fail with
// UnsupportedType.
func ParseCBOR(data []byte) (Value, error) {
	var raw interface{}
	if err := cborDecMode.Unmarshal(data, &raw); err != nil {
		return nil, wrapError(Parse, err, "decoding CBOR")
	}
	return FromAny(raw)
}

// ParseYAML decodes the first YAML document into a Value. Scalars outside
// the JSON model, such as unquoted timestamps (2001-12-14) and binary
// (!!binary), fail with UnsupportedType at their path.
func ParseYAML(data []byte) (Value, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, wrapError(Parse, err, "decoding YAML")
	}
	return FromAny(raw)
}

// FromAny converts a tree of Go values, as produced by the encoding/json,
// CBOR and YAML decoders, into a Value. Values already of type Value are
// kept as they are.
func FromAny(x interface{}) (Value, error) {
	v, err := fromAny(x)
	if err != nil {
		return nil, atPath(err, "$")
	}
	return v, nil
}

func fromAny(x interface{}) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return NewInt(int64(x)), nil
	case int8:
		return NewInt(int64(x)), nil
	case int16:
		return NewInt(int64(x)), nil
	case int32:
		return NewInt(int64(x)), nil
	case int64:
		return NewInt(x), nil
	case uint:
		return NewUint(uint64(x)), nil
	case uint8:
		return NewUint(uint64(x)), nil
	case uint16:
		return NewUint(uint64(x)), nil
	case uint32:
		return NewUint(uint64(x)), nil
	case uint64:
		return NewUint(x), nil
	case *big.Int:
		if x == nil {
			return nil, newError(UnsupportedType, "nil *big.Int")
		}
		return NewBigInt(x), nil
	case big.Int:
		return NewBigInt(&x), nil
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	case json.Number:
		return numberFromText(string(x))
	case string:
		return String(x), nil
	case []interface{}:
		out := make(Array, len(x))
		for i, e := range x {
			v, err := fromAny(e)
			if err != nil {
				return nil, atPath(err, indexSegment(i))
			}
			out[i] = v
		}
		return out, nil
	case map[string]interface{}:
		out := make(Object, len(x))
		for k, e := range x {
			v, err := fromAny(e)
			if err != nil {
				return nil, atPath(err, keySegment(k))
			}
			out[k] = v
		}
		return out, nil
	case map[interface{}]interface{}:
		out := make(Object, len(x))
		for rk, e := range x {
			k, ok := rk.(string)
			if !ok {
				return nil, newError(UnsupportedType, "object key of type %T", rk)
			}
			v, err := fromAny(e)
			if err != nil {
				return nil, atPath(err, keySegment(k))
			}
			out[k] = v
		}
		return out, nil
	default:
		return nil, newError(UnsupportedType, "unsupported value type %T", x)
	}
}

func numberFromText(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		return ParseInt(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, wrapError(NumericRange, err, "number %s", s)
	}
	return Float(f), nil
}
