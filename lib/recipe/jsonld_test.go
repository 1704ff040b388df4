package recipe

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, src string) any {
	t.Helper()
	var v any
	err := json.Unmarshal([]byte(src), &v)
	require.NoError(t, err)
	return v
}

func TestFindRecipeNode(t *testing.T) {
	testCases := []struct {
		name  string
		src   string
		found bool
		title string
	}{
		{
			name:  "direct",
			src:   `{"@type":"Recipe","name":"Soup"}`,
			found: true,
			title: "Soup",
		},
		{
			name:  "type url spelling",
			src:   `{"@type":"https://schema.org/Recipe","name":"Soup"}`,
			found: true,
			title: "Soup",
		},
		{
			name:  "type array",
			src:   `{"@type":["NewsArticle","Recipe"],"name":"Soup"}`,
			found: true,
			title: "Soup",
		},
		{
			name:  "graph and mainEntity wrapping",
			src:   `[{"@graph":[{"@type":"WebPage","mainEntity":{"@type":"Recipe","name":"X"}}]}]`,
			found: true,
			title: "X",
		},
		{
			name:  "first match wins depth first",
			src:   `[{"@graph":[{"@type":"Recipe","name":"First"}]},{"@type":"Recipe","name":"Second"}]`,
			found: true,
			title: "First",
		},
		{
			name:  "no recipe",
			src:   `[{"@type":"NewsArticle","name":"Not food"},{"@graph":[{"@type":"WebSite"}]}]`,
			found: false,
		},
		{
			name:  "scalar input",
			src:   `"just a string"`,
			found: false,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			node, ok := FindRecipeNode(decodeJSON(t, test.src))
			require.Equal(t, test.found, ok)
			if ok {
				require.Equal(t, test.title, node["name"])
			}
		})
	}
}

func TestExtractRecipe(t *testing.T) {
	src := `{
		"@type": "Recipe",
		"name": "Tomato &amp; Basil Soup",
		"description": "Weeknight staple.",
		"recipeIngredient": ["2 cups broth", "", "1 large onion"],
		"recipeInstructions": [
			{"@type": "HowToStep", "text": "Boil"},
			"Simmer for a while",
			{"@type": "HowToSection", "itemListElement": [
				{"@type": "HowToStep", "text": "Blend"},
				{"@type": "HowToStep", "text": "Serve"}
			]}
		],
		"prepTime": "PT10M",
		"cookTime": "PT1H30M",
		"recipeYield": ["8-10 servings"],
		"keywords": "soup, weeknight , ,comfort",
		"image": [
			{"url": "https://img.test/1x1.jpg", "width": 800, "height": 800},
			{"url": "https://img.test/16x9.jpg", "width": 1600, "height": 900},
			{"url": "https://img.test/4x3.jpg", "width": 1200, "height": 900}
		]
	}`
	node, ok := FindRecipeNode(decodeJSON(t, src))
	require.True(t, ok)

	got := ExtractRecipe(node)
	expected := &ScrapedRecipe{
		Title:       "Tomato & Basil Soup",
		Description: "Weeknight staple.",
		Ingredients: []Ingredient{
			{Raw: "2 cups broth", Amount: "2", Unit: "cups", Name: "broth"},
			{Raw: "1 large onion", Amount: "1", Unit: "large", Name: "onion"},
		},
		Instructions: []InstructionStep{
			{Step: 1, Text: "Boil"},
			{Step: 2, Text: "Simmer for a while"},
			{Step: 3, Text: "Blend"},
			{Step: 4, Text: "Serve"},
		},
		PrepTime: 10,
		CookTime: 90,
		Servings: 8,
		ImageURL: "https://img.test/16x9.jpg",
		Tags:     []string{"soup", "weeknight", "comfort"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestDurationMinutes(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{input: "PT1H30M", expected: 90},
		{input: "PT45M", expected: 45},
		{input: "PT2H", expected: 120},
		{input: "PT0M", expected: 0},
		{input: "an hour", expected: 0},
		{input: "", expected: 0},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, durationMinutes(test.input), "input %q", test.input)
	}
}

func TestTotalTimeFallback(t *testing.T) {
	node, ok := FindRecipeNode(decodeJSON(t, `{"@type":"Recipe","name":"X","totalTime":"PT40M"}`))
	require.True(t, ok)

	got := ExtractRecipe(node)
	require.Equal(t, 0, got.PrepTime)
	require.Equal(t, 40, got.CookTime)

	// totalTime must not override an explicit cookTime
	node, ok = FindRecipeNode(decodeJSON(t, `{"@type":"Recipe","name":"X","cookTime":"PT20M","totalTime":"PT40M"}`))
	require.True(t, ok)
	require.Equal(t, 20, ExtractRecipe(node).CookTime)
}

func TestParseServings(t *testing.T) {
	require.Equal(t, 10, parseServings(float64(10)))
	require.Equal(t, 8, parseServings("8-10 servings"))
	require.Equal(t, 4, parseServings([]any{"4"}))
	require.Equal(t, 0, parseServings("serves a crowd"))
	require.Equal(t, 0, parseServings(nil))
	require.Equal(t, 0, parseServings([]any{}))
}

func TestPickBestImage(t *testing.T) {
	// no dimension metadata anywhere: last entry wins
	require.Equal(t, "c", pickBestImage([]any{"a", "b", "c"}))

	// single ImageObject
	require.Equal(t, "u", pickBestImage(map[string]any{"url": "u"}))

	// dimensions on some entries: widest ratio wins over position
	got := pickBestImage([]any{
		map[string]any{"url": "wide", "width": float64(1600), "height": float64(900)},
		map[string]any{"url": "square", "width": float64(800), "height": float64(800)},
		"bare-last",
	})
	require.Equal(t, "wide", got)
}

func TestExtractFromJSONLDMetaFallback(t *testing.T) {
	blocks := []any{decodeJSON(t, `{"@type":"Recipe","name":"Soup"}`)}
	got, ok := ExtractFromJSONLD(blocks, Meta{
		PageTitle: "Soup | Some Site",
		OgImage:   "https://img.test/og.jpg",
		SiteName:  "Some Site",
	})
	require.True(t, ok)
	require.Equal(t, "Some Site", got.SourceName)
	require.Equal(t, "https://img.test/og.jpg", got.ImageURL)

	_, ok = ExtractFromJSONLD([]any{decodeJSON(t, `{"@type":"WebSite"}`)}, Meta{})
	require.False(t, ok)
}
