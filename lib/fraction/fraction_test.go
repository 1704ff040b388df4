package fraction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input string
		ok    bool
		value float64
	}{
		{input: "2", ok: true, value: 2},
		{input: "1.5", ok: true, value: 1.5},
		{input: "3/4", ok: true, value: 0.75},
		{input: "0.25", ok: true, value: 0.25},
		{input: "cup", ok: false},
		{input: "", ok: false},
		{input: "1/0", ok: false},
	}

	for _, test := range testCases {
		f, ok := Parse(test.input)
		require.Equal(t, test.ok, ok, "input %q", test.input)
		if ok {
			require.InDelta(t, test.value, f.Float64(), 1e-9, "input %q", test.input)
		}
	}
}

func TestMulIsExact(t *testing.T) {
	third, ok := New(1, 3)
	require.True(t, ok)
	three, ok := New(3, 1)
	require.True(t, ok)

	product := third.Mul(three)
	require.True(t, product.IsInt())
	require.Equal(t, "1", product.Mixed())

	// 0.1 * 3 in float64 is 0.30000000000000004; in rational form
	// the result is exactly 3/10.
	tenth, ok := New(1, 10)
	require.True(t, ok)
	require.Equal(t, "3/10", tenth.Mul(three).Mixed())
}

func TestSimplify(t *testing.T) {
	testCases := []struct {
		num, den int64
		expected string
	}{
		{num: 2, den: 3, expected: "2/3"},
		{num: 6667, den: 10000, expected: "2/3"},
		{num: 29, den: 2, expected: "14 1/2"},
		{num: 98, den: 100, expected: "1"},
		{num: 5, den: 1, expected: "5"},
	}

	for _, test := range testCases {
		f, ok := New(test.num, test.den)
		require.True(t, ok)
		require.Equal(t, test.expected, f.Simplify(0.05).Mixed(), "%d/%d", test.num, test.den)
	}
}

func TestMixed(t *testing.T) {
	testCases := []struct {
		num, den int64
		expected string
	}{
		{num: 3, den: 2, expected: "1 1/2"},
		{num: 1, den: 2, expected: "1/2"},
		{num: 4, den: 2, expected: "2"},
		{num: 0, den: 1, expected: "0"},
		{num: -1, den: 2, expected: "0"},
	}

	for _, test := range testCases {
		f, ok := New(test.num, test.den)
		require.True(t, ok)
		require.Equal(t, test.expected, f.Mixed(), "%d/%d", test.num, test.den)
	}
}

func TestZeroValue(t *testing.T) {
	var f Fraction
	require.False(t, f.Positive())
	require.Equal(t, "0", f.Mixed())
	require.Equal(t, 0.0, f.Float64())
}
