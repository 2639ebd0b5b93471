package llm

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gestir-app/wardrobe-tracker/constants"
)

// exemplarExpected is the canonical expected output shipped with the studio
// exemplar photo. Kept minimal on purpose: it demonstrates the format, not
// the full attribute set.
var exemplarExpected = mustJSON(ExtractionResult{
	Items: []ExtractionItem{{
		ID:             "example#1",
		Category:       "top",
		Subcategory:    "t-shirt",
		ColorName:      "white",
		ColorHex:       "#F2F2F2",
		Pattern:        "solid",
		MaterialFamily: "cotton",
		Confidence:     0.99,
	}},
	Warnings: []string{},
})

// exemplarAssets lists the few-shot photos looked up in the assets dir.
var exemplarAssets = []string{"studio.jpg"}

// LoadExemplars reads the optional few-shot exemplar images from dir.
// A missing asset is silently skipped; absence is not an error.
func LoadExemplars(dir string) []Exemplar {
	if dir == "" {
		return nil
	}
	var out []Exemplar
	for _, name := range exemplarAssets {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		mt := constants.MimeForExt(filepath.Ext(name))
		if mt == "" {
			continue
		}
		out = append(out, Exemplar{Image: b, MimeType: mt, Expected: exemplarExpected})
	}
	return out
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
