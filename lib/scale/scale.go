package scale

import (
	"regexp"
	"strings"

	"aleppo/lib/fraction"
	"aleppo/lib/recipe"
)

// mixed number first, otherwise the whole-number pattern eats the
// leading digit of "1 1/2"
var leadingQuantityRe = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+|\d+\.?\d*)(.*)`)

var (
	parentheticalRe = regexp.MustCompile(`\(([^)]*)\)`)
	innerQuantityRe = regexp.MustCompile(`\d+\s+\d+/\d+|\d+/\d+|\d+\.?\d*`)
	percentRe       = regexp.MustCompile(`(?i)%|percent`)
	degreeRe        = regexp.MustCompile(`(?i)^\s*°[fck]`)
)

// Ingredient produces the display string for an ingredient scaled by
// factor, or not-ok when the ingredient has no scalable quantity, in
// which case the caller shows the raw text unscaled. Quantities are re-emitted in
// canonical simplified-mixed-fraction form even at factor 1, so
// "0.5 cup" canonicalizes to "1/2 cup"; that is part of the contract.
//
// When the parsed amount field is usable the string is rebuilt from
// parts (cleanest output); otherwise the leading quantity in the raw
// text is replaced in place. Either way, quantities inside
// parenthetical asides ("(1 cup; 205g)") are rescaled too, except
// percentage/ratio parentheticals and temperatures.
func Ingredient(ing recipe.Ingredient, factor float64) (string, bool) {
	if factor <= 0 {
		return "", false
	}
	scale, ok := fraction.FromFloat(factor)
	if !ok {
		return "", false
	}

	if amount := strings.TrimSpace(ing.Amount); amount != "" {
		if qty, ok := ParseQuantity(amount); ok {
			parts := []string{FormatQuantity(qty.Mul(scale))}
			if ing.Unit != "" {
				parts = append(parts, ing.Unit)
			}
			if ing.Name != "" {
				parts = append(parts, scaleParentheticals(ing.Name, scale))
			}
			out := strings.Join(parts, " ")
			if ing.Notes != "" {
				out += ", " + scaleParentheticals(ing.Notes, scale)
			}
			return out, true
		}
	}

	return scaleRaw(ing.Raw, scale)
}

func scaleRaw(raw string, scale fraction.Fraction) (string, bool) {
	normalized := NormalizeVulgarFractions(raw)
	m := leadingQuantityRe.FindStringSubmatch(normalized)
	if m == nil {
		return "", false
	}
	qty, ok := ParseQuantity(m[1])
	if !ok {
		return "", false
	}
	return FormatQuantity(qty.Mul(scale)) + scaleParentheticals(m[2], scale), true
}

// scaleParentheticals rescales every quantity token inside (...) groups
// and leaves text outside parentheses untouched. Guards: a group
// containing "%" or "percent" is a ratio descriptor (fat content,
// hydration) and is skipped whole; a token directly followed by a
// °F/°C/°K degree marker is a temperature and stays put.
func scaleParentheticals(text string, scale fraction.Fraction) string {
	return parentheticalRe.ReplaceAllStringFunc(text, func(group string) string {
		inner := group[1 : len(group)-1]
		if percentRe.MatchString(inner) {
			return group
		}

		inner = NormalizeVulgarFractions(inner)
		var b strings.Builder
		last := 0
		for _, loc := range innerQuantityRe.FindAllStringIndex(inner, -1) {
			b.WriteString(inner[last:loc[0]])
			token := inner[loc[0]:loc[1]]
			last = loc[1]

			if degreeRe.MatchString(inner[loc[1]:]) {
				b.WriteString(token)
				continue
			}
			qty, ok := ParseQuantity(token)
			if !ok {
				b.WriteString(token)
				continue
			}
			b.WriteString(FormatQuantity(qty.Mul(scale)))
		}
		b.WriteString(inner[last:])
		return "(" + b.String() + ")"
	})
}
