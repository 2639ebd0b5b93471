package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/gestir-app/wardrobe-tracker/internal/entity"
	"github.com/gestir-app/wardrobe-tracker/internal/llm"
)

// A well-formed provider id ends in "#<digits>"; anything else is replaced
// by the synthesized fallback.
var reItemID = regexp.MustCompile(`^.+#[0-9]+$`)

// ToWardrobeItem maps one accepted extraction item plus its contextual
// identifiers into a persistable record. Pure; performs no I/O. The store
// id stays zero until commit.
func ToWardrobeItem(item llm.ExtractionItem, ownerID, imageRef string, index int) *entity.WardrobeItem {
	sourceID := item.ID
	if !reItemID.MatchString(sourceID) {
		sourceID = FallbackID(imageRef, index)
	}

	now := time.Now().UTC()
	return &entity.WardrobeItem{
		OwnerID:     ownerID,
		Name:        deriveName(item),
		Category:    item.Category,
		Subcategory: item.Subcategory,

		ColorName:       item.ColorName,
		ColorHex:        item.ColorHex,
		SecondaryColors: item.SecondaryColors,
		Pattern:         item.Pattern,
		MaterialFamily:  item.MaterialFamily,
		Fit:             item.Fit,
		Length:          item.Length,
		Rise:            item.Rise,
		Sleeve:          item.Sleeve,
		Neckline:        item.Neckline,
		DominantFinish:  item.DominantFinish,
		BrandText:       item.BrandText,
		Notes:           item.Notes,
		Confidence:      item.Confidence,

		Legacy: deriveLegacy(item),

		ImageRef:  imageRef,
		CreatedAt: now,
		UpdatedAt: now,
		SourceID:  sourceID,
	}
}

// FallbackID synthesizes the extraction id for a missing or malformed
// provider id. Index is 1-based.
func FallbackID(imageRef string, index int) string {
	return fmt.Sprintf("%s#%d", imageRef, index)
}

// deriveName concatenates colorName, materialFamily and subcategory,
// skipping empty components, and capitalizes the first letter of each
// resulting word: navy + cotton + t-shirt -> "Navy Cotton T-shirt".
func deriveName(item llm.ExtractionItem) string {
	var parts []string
	for _, p := range []string{item.ColorName, item.MaterialFamily, item.Subcategory} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	words := strings.Fields(strings.Join(parts, " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// deriveLegacy computes the flattened compatibility view from the detailed
// attributes. Style/occasion/season are fixed placeholders until style
// inference exists.
func deriveLegacy(item llm.ExtractionItem) entity.LegacyView {
	colors := make([]string, 0, 1+len(item.SecondaryColors))
	colors = append(colors, item.ColorName)
	colors = append(colors, item.SecondaryColors...)
	return entity.LegacyView{
		Colors:    colors,
		Materials: []string{item.MaterialFamily},
		Patterns:  []string{item.Pattern},
		Style:     "casual",
		Occasion:  []string{"casual"},
		Season:    []string{"all"},
	}
}
