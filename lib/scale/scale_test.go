package scale

import (
	"testing"

	"aleppo/lib/recipe"

	"github.com/stretchr/testify/require"
)

func TestIngredientRawPath(t *testing.T) {
	testCases := []struct {
		raw      string
		factor   float64
		ok       bool
		expected string
	}{
		{raw: "1 1/2 cups flour", factor: 2, ok: true, expected: "3 cups flour"},
		{raw: "1/4 cup butter", factor: 2, ok: true, expected: "1/2 cup butter"},
		{raw: "2 large eggs", factor: 2, ok: true, expected: "4 large eggs"},
		{raw: "2 large eggs", factor: 0.5, ok: true, expected: "1 large eggs"},
		{raw: "½ cup butter", factor: 2, ok: true, expected: "1 cup butter"},
		{raw: "0.5 cup milk", factor: 1, ok: true, expected: "1/2 cup milk"},
		{raw: "3 cups broth", factor: 1.0 / 3.0, ok: true, expected: "1 cups broth"},
		{raw: "salt to taste", factor: 2, ok: false},
		{raw: "a pinch of saffron", factor: 3, ok: false},
		{raw: "", factor: 2, ok: false},
	}

	for _, test := range testCases {
		got, ok := Ingredient(recipe.Ingredient{Raw: test.raw}, test.factor)
		require.Equal(t, test.ok, ok, "raw %q", test.raw)
		if ok {
			require.Equal(t, test.expected, got, "raw %q x%v", test.raw, test.factor)
		}
	}
}

func TestIngredientStructuredPath(t *testing.T) {
	ing := recipe.Ingredient{
		Raw:    "1 1/2 cups all-purpose flour, sifted",
		Amount: "1 1/2",
		Unit:   "cups",
		Name:   "all-purpose flour",
		Notes:  "sifted",
	}
	got, ok := Ingredient(ing, 2)
	require.True(t, ok)
	require.Equal(t, "3 cups all-purpose flour, sifted", got)

	// unparseable amount falls back to the raw path
	ing = recipe.Ingredient{
		Raw:    "2 cups broth",
		Amount: "a couple",
	}
	got, ok = Ingredient(ing, 2)
	require.True(t, ok)
	require.Equal(t, "4 cups broth", got)
}

func TestIngredientParentheticals(t *testing.T) {
	got, ok := Ingredient(recipe.Ingredient{Raw: "7 1/4 ounces white sugar (1 cup; 205g)"}, 2)
	require.True(t, ok)
	require.Equal(t, "14 1/2 ounces white sugar (2 cup; 410g)", got)

	// structured path scales parentheticals in the name too
	got, ok = Ingredient(recipe.Ingredient{
		Raw:    "7 1/4 ounces white sugar (1 cup; 205g)",
		Amount: "7 1/4",
		Unit:   "ounces",
		Name:   "white sugar (1 cup; 205g)",
	}, 2)
	require.True(t, ok)
	require.Equal(t, "14 1/2 ounces white sugar (2 cup; 410g)", got)

	// unicode fractions inside parentheticals scale as well
	got, ok = Ingredient(recipe.Ingredient{Raw: "1 stick butter (½ cup)"}, 2)
	require.True(t, ok)
	require.Equal(t, "2 stick butter (1 cup)", got)
}

func TestIngredientPercentGuard(t *testing.T) {
	got, ok := Ingredient(recipe.Ingredient{Raw: "4 pounds pork shoulder (15- to 20-percent fat)"}, 2)
	require.True(t, ok)
	require.Equal(t, "8 pounds pork shoulder (15- to 20-percent fat)", got)

	got, ok = Ingredient(recipe.Ingredient{Raw: "2 cups cream (36% fat)"}, 3)
	require.True(t, ok)
	require.Equal(t, "6 cups cream (36% fat)", got)
}

func TestIngredientTemperatureGuard(t *testing.T) {
	got, ok := Ingredient(recipe.Ingredient{Raw: "2 sticks butter (softened, about 65°F)"}, 2)
	require.True(t, ok)
	require.Equal(t, "4 sticks butter (softened, about 65°F)", got)

	got, ok = Ingredient(recipe.Ingredient{Raw: "1 cup water (heated to 80 °C)"}, 4)
	require.True(t, ok)
	require.Equal(t, "4 cup water (heated to 80 °C)", got)
}

func TestIngredientInvalidFactor(t *testing.T) {
	_, ok := Ingredient(recipe.Ingredient{Raw: "2 cups flour"}, 0)
	require.False(t, ok)
	_, ok = Ingredient(recipe.Ingredient{Raw: "2 cups flour"}, -1)
	require.False(t, ok)
}

func TestIngredientDeterminism(t *testing.T) {
	ing := recipe.Ingredient{Raw: "1 2/3 cups sugar (340g)"}
	first, ok := Ingredient(ing, 1.5)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := Ingredient(ing, 1.5)
		require.True(t, ok)
		require.Equal(t, first, again)
	}
}

func TestIngredientCanonicalAtFactorOne(t *testing.T) {
	// canonical input comes back unchanged
	got, ok := Ingredient(recipe.Ingredient{Raw: "1 1/2 cups flour"}, 1)
	require.True(t, ok)
	require.Equal(t, "1 1/2 cups flour", got)

	// non-canonical input canonicalizes, which is accepted behavior
	got, ok = Ingredient(recipe.Ingredient{Raw: "0.5 cup butter"}, 1)
	require.True(t, ok)
	require.Equal(t, "1/2 cup butter", got)
}
