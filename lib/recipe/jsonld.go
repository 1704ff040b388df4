package recipe

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var recipeTypes = map[string]bool{
	"Recipe":                    true,
	"https://schema.org/Recipe": true,
	"http://schema.org/Recipe":  true,
}

func isRecipeType(v any) bool {
	switch t := v.(type) {
	case string:
		return recipeTypes[t]
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && recipeTypes[s] {
				return true
			}
		}
	}
	return false
}

// FindRecipeNode walks a decoded JSON-LD value depth-first and returns
// the first node typed as a schema.org Recipe. It understands top-level
// arrays, @graph wrappers and WebPage nodes carrying a mainEntity;
// multiple candidate Recipe nodes on one page are not merged, the first
// match wins.
func FindRecipeNode(node any) (map[string]any, bool) {
	switch n := node.(type) {
	case []any:
		for _, item := range n {
			if found, ok := FindRecipeNode(item); ok {
				return found, true
			}
		}
	case map[string]any:
		if isRecipeType(n["@type"]) {
			return n, true
		}
		if graph, ok := n["@graph"]; ok {
			if found, ok := FindRecipeNode(graph); ok {
				return found, true
			}
		}
		if entity, ok := n["mainEntity"]; ok {
			if found, ok := FindRecipeNode(entity); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// ExtractFromJSONLD searches the decoded JSON-LD blocks for a Recipe
// node and maps it into the canonical shape. The meta hints fill in
// source name and image when the structured data omits them. Returns
// false only when no Recipe-typed node exists anywhere in blocks.
func ExtractFromJSONLD(blocks []any, meta Meta) (*ScrapedRecipe, bool) {
	node, ok := FindRecipeNode(blocks)
	if !ok {
		return nil, false
	}

	out := ExtractRecipe(node)
	if out.SourceName == "" {
		out.SourceName = meta.SiteName
	}
	if out.ImageURL == "" {
		out.ImageURL = meta.OgImage
	}
	return out, true
}

// ExtractRecipe maps one Recipe-typed JSON-LD node into a
// ScrapedRecipe. Every field read tolerates absence or a wrong type;
// malformed fields are omitted rather than failing the extraction.
func ExtractRecipe(node map[string]any) *ScrapedRecipe {
	prep := durationMinutes(node["prepTime"])
	cook := durationMinutes(node["cookTime"])
	total := durationMinutes(node["totalTime"])
	if cook == 0 && prep == 0 {
		// pages like NYT Cooking only state total time; surface it as
		// the cook time so the user doesn't see blank fields
		cook = total
	}

	return &ScrapedRecipe{
		Title:        decode(stringValue(node["name"])),
		Description:  decode(stringValue(node["description"])),
		Ingredients:  parseIngredients(node["recipeIngredient"]),
		Instructions: flattenInstructions(node["recipeInstructions"]),
		PrepTime:     prep,
		CookTime:     cook,
		Servings:     parseServings(node["recipeYield"]),
		ImageURL:     pickBestImage(node["image"]),
		Tags:         parseKeywords(node["keywords"]),
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func numberValue(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func decode(s string) string {
	return html.UnescapeString(s)
}

// leading quantity (ascii digits, slashes, dots and vulgar fraction
// glyphs), then up to two unit-ish words, then the rest
var ingredientRe = regexp.MustCompile(`^([\d/.\s\x{00BC}-\x{00BE}\x{2150}-\x{215E}]+)?\s*([a-zA-Z]+(?:\s+[a-zA-Z]+)?)?\s+(.+)?$`)

var whitespaceRe = regexp.MustCompile(`\s+`)

func parseIngredients(v any) []Ingredient {
	raw, _ := v.([]any)
	out := []Ingredient{}
	for _, item := range raw {
		line := decode(stringValue(item))
		line = whitespaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
		if line == "" {
			continue
		}

		ing := Ingredient{Raw: line, Name: line}
		if m := ingredientRe.FindStringSubmatch(line); m != nil {
			ing.Amount = strings.TrimSpace(m[1])
			ing.Unit = strings.TrimSpace(m[2])
			if name := strings.TrimSpace(m[3]); name != "" {
				ing.Name = name
			}
		}
		out = append(out, ing)
	}
	return out
}

func flattenInstructions(v any) []InstructionStep {
	raw, _ := v.([]any)
	out := []InstructionStep{}
	add := func(text string) {
		text = strings.TrimSpace(decode(text))
		if text == "" {
			return
		}
		out = append(out, InstructionStep{Step: len(out) + 1, Text: text})
	}

	for _, item := range raw {
		switch step := item.(type) {
		case string:
			add(step)
		case map[string]any:
			switch stringValue(step["@type"]) {
			case "HowToStep":
				add(stringValue(step["text"]))
			case "HowToSection":
				children, _ := step["itemListElement"].([]any)
				for _, child := range children {
					sub, _ := child.(map[string]any)
					add(stringValue(sub["text"]))
				}
			}
		}
	}
	return out
}

var isoDurationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// durationMinutes parses an ISO-8601 duration like "PT1H30M" into total
// minutes. Returns 0 for anything unparseable or non-positive.
func durationMinutes(v any) int {
	s := stringValue(v)
	if s == "" {
		return 0
	}
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	total := hours*60 + minutes
	if total <= 0 {
		return 0
	}
	return total
}

var leadingIntRe = regexp.MustCompile(`^\s*(\d+)`)

// parseServings handles the shapes schema.org allows for recipeYield:
// a number, a numeric-ish string ("8-10 servings"), or an array of
// either (first element wins).
func parseServings(v any) int {
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return 0
		}
		v = arr[0]
	}
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(n)
		}
	case string:
		if m := leadingIntRe.FindStringSubmatch(n); m != nil {
			servings, _ := strconv.Atoi(m[1])
			return servings
		}
	}
	return 0
}

// pickBestImage selects a display image from schema.org's image field,
// which may be a bare URL, an ImageObject, or an array of either.
// Sites like AllRecipes list three crops narrowest to widest
// ([1:1, 4:3, 16:9]); the recipe page shows a wide banner, so the
// widest aspect ratio wins. Without any dimension metadata the last
// entry is kept, widest by convention.
func pickBestImage(v any) string {
	switch img := v.(type) {
	case string:
		return img
	case map[string]any:
		return stringValue(img["url"])
	case []any:
		bestURL := ""
		bestRatio := -1.0
		sawDimensions := false
		for _, entry := range img {
			var url string
			var w, h float64
			switch e := entry.(type) {
			case string:
				url = e
			case map[string]any:
				url = stringValue(e["url"])
				w = numberValue(e["width"])
				h = numberValue(e["height"])
			}
			if url == "" {
				continue
			}
			if w > 0 && h > 0 {
				sawDimensions = true
				if ratio := w / h; ratio > bestRatio {
					bestRatio = ratio
					bestURL = url
				}
			} else if !sawDimensions {
				bestURL = url
			}
		}
		return bestURL
	}
	return ""
}

func parseKeywords(v any) []string {
	var out []string
	switch k := v.(type) {
	case string:
		for _, part := range strings.Split(k, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	case []any:
		for _, item := range k {
			if s := strings.TrimSpace(stringValue(item)); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
