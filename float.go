package objecthash

import (
	"math"
	"strconv"
	"strings"
)

// zeroFloat is the normalized form of both +0 and -0.
const zeroFloat = "+0:"

// maxMantissaBits bounds the bit loop. A float64 never needs more than 54.
const maxMantissaBits = 1100

// NormalizeFloat returns the canonical text of f used as the payload of a
// float digest: a sign, the binary exponent, ':', then the mantissa as a
// bit string with the mantissa scaled into (0.5, 1].
//
//	NormalizeFloat(1.0) == "+0:1"
//	NormalizeFloat(1.5) == "+1:011"
//
// The text is built from halving, doubling and comparison only, so it does
// not depend on platform float formatting.
func NormalizeFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", newError(NumericRange, "float %v cannot be normalized", f)
	}
	if f == 0 {
		return zeroFloat, nil
	}

	var sb strings.Builder
	if f < 0 {
		sb.WriteByte('-')
		f = -f
	} else {
		sb.WriteByte('+')
	}

	e := 0
	for f > 1 {
		f /= 2
		e++
	}
	for f <= 0.5 {
		f *= 2
		e--
	}
	sb.WriteString(strconv.Itoa(e))
	sb.WriteByte(':')

	if f > 1 || f <= 0.5 {
		return "", newError(Internal, "mantissa %v outside (0.5, 1]", f)
	}
	for bits := 0; f != 0; bits++ {
		if bits >= maxMantissaBits {
			return "", newError(Internal, "mantissa of %v exceeds %d bits", f, maxMantissaBits)
		}
		if f >= 1 {
			sb.WriteByte('1')
			f -= 1
		} else {
			sb.WriteByte('0')
		}
		if f >= 1 {
			return "", newError(Internal, "mantissa remainder %v reached 1", f)
		}
		f *= 2
	}
	return sb.String(), nil
}
