package recipe

// Ingredient is one line of a recipe's ingredient list. Raw is always
// present and is the fallback display/scale source; the parsed fields
// are best-effort and may be absent or wrong for unusual phrasings.
type Ingredient struct {
	Raw    string `json:"raw"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
	Name   string `json:"name,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// InstructionStep positions are assigned at extraction time, contiguous
// and 1-based regardless of what the source markup claimed.
type InstructionStep struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

// ScrapedRecipe is the canonical extraction output. It is built once
// per extraction attempt and handed to the caller whole; extraction
// failure yields nil plus a diagnostic, never a half-filled record.
type ScrapedRecipe struct {
	Title        string            `json:"title,omitempty"`
	Description  string            `json:"description,omitempty"`
	Ingredients  []Ingredient      `json:"ingredients"`
	Instructions []InstructionStep `json:"instructions"`
	// prep/cook times in minutes, 0 when the page didn't state one
	PrepTime   int      `json:"prepTime,omitempty"`
	CookTime   int      `json:"cookTime,omitempty"`
	Servings   int      `json:"servings,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	SourceName string   `json:"sourceName,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Meta carries the page-level hints (title tag, Open Graph) used to
// fill fields the structured data omits.
type Meta struct {
	PageTitle string `json:"title"`
	OgImage   string `json:"ogImage"`
	SiteName  string `json:"siteName"`
}
