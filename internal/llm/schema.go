package llm

import (
	"github.com/gestir-app/wardrobe-tracker/constants"
)

// HexColorPattern is the exact shape required for colorHex values.
const HexColorPattern = `^#([0-9A-Fa-f]{6})$`

// BuildGarmentJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the provider as a structured output
// constraint and also use it locally to re-validate — the provider is not
// trusted to honor the constraint perfectly.
func BuildGarmentJSONSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"items", "warnings"},
		"properties": map[string]any{
			"items": map[string]any{
				"type":  "array",
				"items": BuildGarmentItemSchema(),
			},
			"warnings": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}
}

// BuildGarmentItemSchema returns the schema for a single extraction item.
// Enum membership and the hex pattern are part of the contract: an unknown
// value invalidates the whole item, not just the field.
func BuildGarmentItemSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"required": []string{
			"id", "category", "subcategory", "colorName", "colorHex",
			"pattern", "materialFamily", "confidence",
		},
		"properties": map[string]any{
			"id":          map[string]any{"type": "string"},
			"category":    enumProp(constants.CategoryStrings()),
			"subcategory": map[string]any{"type": "string"},
			"colorName":   map[string]any{"type": "string"},
			"colorHex":    map[string]any{"type": "string", "pattern": HexColorPattern},
			"secondaryColors": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"pattern":        enumProp(constants.Patterns),
			"materialFamily": enumProp(constants.MaterialFamilies),
			"fit":            enumProp(constants.Fits),
			"length":         enumProp(constants.Lengths),
			"rise":           enumProp(constants.Rises),
			"sleeve":         enumProp(constants.Sleeves),
			"neckline":       enumProp(constants.Necklines),
			"dominantFinish": enumProp(constants.Finishes),
			"brandText":      map[string]any{"type": "string"},
			"notes":          map[string]any{"type": "string"},
			"confidence":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
	}
}

func enumProp(members []string) map[string]any {
	return map[string]any{
		"type": "string",
		"enum": members,
	}
}
