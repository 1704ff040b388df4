package scale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeVulgarFractions(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "1½ cups", expected: "1 1/2 cups"},
		{input: "½ cup butter", expected: "1/2 cup butter"},
		{input: "⅔ cup sugar", expected: "2/3 cup sugar"},
		{input: "2¾ pounds", expected: "2 3/4 pounds"},
		{input: "⅒ of it", expected: "1/10 of it"},
		{input: "no fractions here", expected: "no fractions here"},
		{input: "", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeVulgarFractions(test.input), "input %q", test.input)
	}
}

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		input string
		ok    bool
		value float64
	}{
		{input: "1 1/2", ok: true, value: 1.5},
		{input: "2", ok: true, value: 2},
		{input: "3/4", ok: true, value: 0.75},
		{input: "0.25", ok: true, value: 0.25},
		{input: "1½", ok: true, value: 1.5},
		{input: "½", ok: true, value: 0.5},
		{input: "0", ok: false},
		{input: "1/0", ok: false},
		{input: "-2", ok: false},
		{input: "a pinch", ok: false},
		{input: "", ok: false},
	}

	for _, test := range testCases {
		f, ok := ParseQuantity(test.input)
		require.Equal(t, test.ok, ok, "input %q", test.input)
		if ok {
			require.InDelta(t, test.value, f.Float64(), 1e-9, "input %q", test.input)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "1 1/2", expected: "1 1/2"},
		{input: "2", expected: "2"},
		{input: "0.5", expected: "1/2"},
		{input: "0.666666", expected: "2/3"},
		{input: "3/2", expected: "1 1/2"},
	}

	for _, test := range testCases {
		f, ok := ParseQuantity(test.input)
		require.True(t, ok, "input %q", test.input)
		require.Equal(t, test.expected, FormatQuantity(f), "input %q", test.input)
	}
}
