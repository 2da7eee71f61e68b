package objecthash

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedactRoundTrip(t *testing.T) {
	d := digestOf(t, String("bar"))
	text := Redact(d)
	require.Equal(t, "**REDACTED**e303ce0bd0f4c1fdfe4cc1e837d7391241e2e047df10fa6101733dc120675dfe", text)
	require.Equal(t, text, NewRedacted(d).String())

	back, err := Unredact(text)
	require.NoError(t, err)
	require.Equal(t, d, back)

	upper, err := Unredact(RedactedPrefix + strings.ToUpper(ToHex(d)))
	require.NoError(t, err)
	require.Equal(t, d, upper)

	r, err := ParseRedacted(text)
	require.NoError(t, err)
	require.Equal(t, d, r.Digest())
	require.Equal(t, KindRedacted, r.Kind())
}

func TestUnredactErrors(t *testing.T) {
	valid := ToHex(digestOf(t, String("bar")))
	for _, text := range []string{
		valid,
		"**redacted**" + valid,
		RedactedPrefix,
		RedactedPrefix + valid[:63],
		RedactedPrefix + valid + "0",
		RedactedPrefix + "123",
		RedactedPrefix + strings.Repeat("g", DigestHexLength),
	} {
		_, err := Unredact(text)
		require.True(t, IsKind(err, MalformedRedaction), "%q: got %v", text, err)
	}
}

func TestRedactionInvariance(t *testing.T) {
	part := Object{"field1": String("value"), "field2": String("value2")}
	full := Object{"field3": String("value3"), "part": part}

	want := digestOf(t, full)
	require.Equal(t, "22faba287dc6f24fa52758e3500da9b9d0701804462f1d0ad7b591adc8099f4d", want.Hex())

	redacted, err := RedactValue(part)
	require.NoError(t, err)
	require.Equal(t, "3d90d866924ce264a032afa6068bb3eeee8c43fb93b3e47865cadcba18a1d793", redacted.Digest().Hex())

	got := digestOf(t, Object{"field3": String("value3"), "part": redacted})
	require.Equal(t, want, got)

	// Every subtree position, at every depth.
	doc := Array{String("foo"), Object{"bar": Array{String("baz"), Null{}, NewInt(1), Float(1.5), Object{"x": Bool(true)}}}}
	root := digestOf(t, doc)
	inner := doc[1].(Object)["bar"].(Array)
	for i := range inner {
		r, err := RedactValue(inner[i])
		require.NoError(t, err)
		replaced := make(Array, len(inner))
		copy(replaced, inner)
		replaced[i] = r
		require.Equal(t, root, digestOf(t, Array{doc[0], Object{"bar": replaced}}), "element %d", i)
	}
	r, err := RedactValue(doc[1])
	require.NoError(t, err)
	require.Equal(t, root, digestOf(t, Array{doc[0], r}))

	whole, err := RedactValue(doc)
	require.NoError(t, err)
	require.Equal(t, root, digestOf(t, whole))
}

func TestRedactionPlaceholdersInJSON(t *testing.T) {
	h := NewHasher(WithRedactionPlaceholders())

	jsonPart := `{"field1": "value", "field2": "value2"}`
	partHash := mustHashJSON(t, h, jsonPart)
	full := mustHashJSON(t, h, fmt.Sprintf(`{"field3": "value3", "part": %s}`, jsonPart))
	withRedacted := mustHashJSON(t, h, fmt.Sprintf(`{"field3": "value3", "part": "%s%s"}`, RedactedPrefix, partHash))
	require.Equal(t, full, withRedacted)

	// Without placeholder recognition the text is hashed as an ordinary string.
	plain := mustHashJSON(t, NewHasher(), fmt.Sprintf(`{"field3": "value3", "part": "%s%s"}`, RedactedPrefix, partHash))
	require.NotEqual(t, full, plain)
}

func TestRedactionPlaceholdersCommonJSON(t *testing.T) {
	h := NewHasher(WithCommonize(), WithRedactionPlaceholders())
	const want = "783a423b094307bcb28d005bc2f026ff44204442ef3513585e7e73b66e3c2213"
	for _, j := range []string{
		`["foo", "**REDACTED**96e2aab962831956c80b542f056454be411f870055d37805feb3007c855bd823"]`,
		`["foo", {"bar": ["**REDACTED**82f70430fa7b78951b3c4634d228756a165634df977aa1fada051d6828e78f30", null, 1.0, 1.5, "**REDACTED**1195afc7f0b70bb9d7960c3615668e072a1cbfbbb001f84871fd2e222a87be1d", 1000.0, 2.0, -23.1234, 2.0]}]`,
		`["foo", {"**REDACTED**e303ce0bd0f4c1fdfe4cc1e837d7391241e2e047df10fa6101733dc120675dfe": ["baz", null, 1.0, 1.5, 0.0001, 1000.0, 2.0, -23.1234, 2.0]}]`,
	} {
		require.Equal(t, want, mustHashJSON(t, h, j), j)
	}
	require.Equal(t, "32ae896c413cfdc79eec68be9139c86ded8b279238467c216cf2bec4d5f1e4a2",
		mustHashJSON(t, h, `["foo", "**REDACTED**e303ce0bd0f4c1fdfe4cc1e837d7391241e2e047df10fa6101733dc120675dfe"]`))
}

func TestRedactionPlaceholderMalformed(t *testing.T) {
	h := NewHasher(WithRedactionPlaceholders())
	_, err := h.HashJSON([]byte(`{"a": ["ok", "**REDACTED**nothex"]}`))
	require.True(t, IsKind(err, MalformedRedaction), "got %v", err)
	require.Contains(t, err.Error(), `$["a"][1]`)

	_, err = h.HashJSON([]byte(`{"**REDACTED**00": 1}`))
	require.True(t, IsKind(err, MalformedRedaction), "got %v", err)
}
