package normalize

import (
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestCanonicalizePrimitivesUnchanged(t *testing.T) {
	for _, v := range []any{nil, true, false, 1.5, "Allow", ""} {
		assert.Equal(t, v, Canonicalize(v))
	}
}

func TestCanonicalizeCollapsesStructurallyEqual(t *testing.T) {
	a := Canonicalize(decode(t, `{"b": 1, "a": [true, "x"]}`))
	b := Canonicalize(decode(t, `{"a":[true,"x"],"b":1}`))
	assert.Equal(t, a, b)
	assert.Equal(t, `{"a":[true,"x"],"b":1}`, a)

	assert.Equal(t, `["Allow","Disallow"]`, Canonicalize(decode(t, `["Allow", "Disallow"]`)))
	assert.NotEqual(t, Canonicalize(decode(t, `["a","b"]`)), Canonicalize(decode(t, `["b","a"]`)))
}

func TestCanonicalizeKeepsNonASCII(t *testing.T) {
	assert.Equal(t, `{"作者":"名前"}`, Canonicalize(decode(t, `{"作者":"名前"}`)))
}

func TestForCompare(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "trim and lower", input: "  Disallow \t", expected: "disallow"},
		{name: "true string", input: "TRUE", expected: true},
		{name: "false string padded", input: " False ", expected: false},
		{name: "truthy word stays string", input: "yes", expected: "yes"},
		{name: "bool passes", input: true, expected: true},
		{name: "number passes", input: 3.0, expected: 3.0},
		{name: "nil passes", input: nil, expected: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForCompare(tt.input))
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{name: "case insensitive", expected: "disallow", actual: "Disallow", want: true},
		{name: "whitespace", expected: " Everyone", actual: "Everyone ", want: true},
		{name: "bool string vs bool", expected: "true", actual: true, want: true},
		{name: "bool vs bool string", expected: false, actual: "FALSE", want: true},
		{name: "bool mismatch", expected: "true", actual: false, want: false},
		{name: "numbers", expected: 1.0, actual: 1.0, want: true},
		{name: "number vs string", expected: "1", actual: 1.0, want: false},
		{name: "lists", expected: []any{"a"}, actual: []any{"a"}, want: true},
		{name: "list vs scalar", expected: []any{"a"}, actual: "a", want: false},
		{name: "objects", expected: map[string]any{"k": "v"}, actual: map[string]any{"k": "v"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.expected, tt.actual))
		})
	}
}

func TestForCompareIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("ForCompare(ForCompare(s)) == ForCompare(s)", prop.ForAll(
		func(s string) bool {
			once := ForCompare(s)
			return ForCompare(once) == once
		},
		gen.OneGenOf(
			gen.AnyString(),
			gen.AlphaString(),
			gen.OneConstOf("true", "FALSE", " True ", "Allow", "  disallow"),
		),
	))

	properties.Property("Equal is symmetric", prop.ForAll(
		func(a, b string) bool {
			return Equal(a, b) == Equal(b, a)
		},
		gen.OneConstOf("true", "True", "false", "Allow", "allow ", "Disallow"),
		gen.OneConstOf("true", "TRUE", "false", "Allow", " ALLOW", "Everyone"),
	))

	properties.TestingRun(t)
}
