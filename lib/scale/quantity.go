package scale

import (
	"regexp"
	"strconv"
	"strings"

	"aleppo/lib/fraction"
)

var vulgarFractions = map[rune]string{
	'¼': "1/4", '½': "1/2", '¾': "3/4",
	'⅐': "1/7", '⅑': "1/9", '⅒': "1/10",
	'⅓': "1/3", '⅔': "2/3",
	'⅕': "1/5", '⅖': "2/5", '⅗': "3/5", '⅘': "4/5",
	'⅙': "1/6", '⅚': "5/6",
	'⅛': "1/8", '⅜': "3/8", '⅝': "5/8", '⅞': "7/8",
}

// NormalizeVulgarFractions rewrites unicode vulgar fraction glyphs into
// ascii "n/d" form so every downstream quantity regex sees one input
// shape. A glyph directly after digits is a mixed number: "1½" becomes
// "1 1/2". Unmapped characters pass through unchanged.
func NormalizeVulgarFractions(s string) string {
	var b strings.Builder
	prevDigit := false
	for _, r := range s {
		if ascii, ok := vulgarFractions[r]; ok {
			if prevDigit {
				b.WriteByte(' ')
			}
			b.WriteString(ascii)
			prevDigit = false
			continue
		}
		b.WriteRune(r)
		prevDigit = r >= '0' && r <= '9'
	}
	return b.String()
}

var mixedNumberRe = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)$`)

// ParseQuantity parses a quantity token ("2", "1/2", "1 1/2", "0.75",
// "1½") into an exact fraction. Not-ok means "this is not a scalable
// quantity" (including zero and negative values) and callers must
// treat it as such, never as an error.
func ParseQuantity(s string) (fraction.Fraction, bool) {
	s = strings.TrimSpace(NormalizeVulgarFractions(s))

	if m := mixedNumberRe.FindStringSubmatch(s); m != nil {
		whole, err1 := strconv.ParseInt(m[1], 10, 64)
		num, err2 := strconv.ParseInt(m[2], 10, 64)
		den, err3 := strconv.ParseInt(m[3], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil || den == 0 {
			return fraction.Fraction{}, false
		}
		f, ok := fraction.New(whole*den+num, den)
		if !ok || !f.Positive() {
			return fraction.Fraction{}, false
		}
		return f, true
	}

	f, ok := fraction.Parse(s)
	if !ok || !f.Positive() {
		return fraction.Fraction{}, false
	}
	return f, true
}

// FormatQuantity renders a fraction as cooking-friendly text: whole
// values as bare integers ("2", never "2/1" or "2.0"), everything else
// as a simplified mixed fraction, rounded to the nearest simple
// fraction within 0.05 (so 0.666... prints as "2/3", not "667/1000").
func FormatQuantity(f fraction.Fraction) string {
	if !f.Positive() {
		return "0"
	}
	if f.IsInt() {
		return f.Mixed()
	}
	return f.Simplify(simplifyTolerance).Mixed()
}

const simplifyTolerance = 0.05
