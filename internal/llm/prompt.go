package llm

import (
	"strings"

	"github.com/gestir-app/wardrobe-tracker/constants"
)

// BuildSystemPrompt composes the fixed instruction block: category taxonomy,
// per-category subcategory vocabulary, and the hard rules the extraction
// contract depends on.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a wardrobe ingestion engine for single-person photos.",
		"Identify each distinct garment visible on the person and return STRICT JSON only, matching the provided JSON Schema.",
		"Use the provided enums exactly; do not invent new labels.",
		"Allowed categories (enum): " + strings.Join(constants.CategoryStrings(), ", ") + ".",
		"Category subcategory vocabulary: " + buildSubcategoryRubric(),
		"If two garments are layered (e.g., tee under blazer), list both as separate items.",
		"Choose the closest enum member; if unknown, use the explicit 'other'/'unknown'/'na'/'none' member and lower 'confidence'.",
		"Always provide both colorName and colorHex (approximate the hex as #RRGGBB).",
		"Use 'logo' pattern only if a logo graphic dominates the front.",
		"Keep 'brandText' short: only word(s) you can actually read, never a guess.",
		"If you lowered confidence for any field, add one short line in 'notes'.",
		"IDs must be \"<photoRef>#<index>\" starting at 1, where photoRef is given after the photo.",
		"Return JSON only; no prose.",
	}
	return strings.Join(parts, " ")
}

// BuildPhotoRefNote is the trailing text part stating the image reference,
// so the model can produce well-formed ids.
func BuildPhotoRefNote(imageRef string) string {
	return "photoRef: " + imageRef
}

// buildSubcategoryRubric flattens the documented per-category vocabulary
// into one prompt line per category.
func buildSubcategoryRubric() string {
	var parts []string
	for _, cat := range constants.CategoryStrings() {
		subs := constants.Subcategories[constants.Category(cat)]
		parts = append(parts, cat+": "+strings.Join(subs, ", "))
	}
	return strings.Join(parts, " | ")
}
