package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestir-app/wardrobe-tracker/internal/llm"
)

func sampleItem() llm.ExtractionItem {
	return llm.ExtractionItem{
		ID:              "closet/p1.jpg#1",
		Category:        "top",
		Subcategory:     "t-shirt",
		ColorName:       "navy",
		ColorHex:        "#1F2A44",
		SecondaryColors: []string{"white"},
		Pattern:         "solid",
		MaterialFamily:  "cotton",
		Fit:             "regular",
		Sleeve:          "short",
		Neckline:        "crew",
		Confidence:      0.92,
	}
}

func TestToWardrobeItemKeepsWellFormedSourceID(t *testing.T) {
	rec := ToWardrobeItem(sampleItem(), "u1", "closet/p1.jpg", 1)

	assert.Equal(t, "closet/p1.jpg#1", rec.SourceID)
	assert.Equal(t, "u1", rec.OwnerID)
	assert.Equal(t, "closet/p1.jpg", rec.ImageRef)
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
}

func TestToWardrobeItemSynthesizesFallbackID(t *testing.T) {
	for _, badID := range []string{"", "garment-one", "p1.jpg#", "#7x"} {
		it := sampleItem()
		it.ID = badID
		rec := ToWardrobeItem(it, "u1", "closet/p1.jpg", 3)
		assert.Equal(t, "closet/p1.jpg#3", rec.SourceID, "id %q", badID)
	}
}

func TestDeriveNameCapitalizesWords(t *testing.T) {
	rec := ToWardrobeItem(sampleItem(), "u1", "p.jpg", 1)
	assert.Equal(t, "Navy Cotton T-shirt", rec.Name)
}

func TestDeriveNameSkipsEmptyComponents(t *testing.T) {
	it := sampleItem()
	it.ColorName = ""
	it.MaterialFamily = "denim"
	it.Subcategory = "jeans"

	rec := ToWardrobeItem(it, "u1", "p.jpg", 1)
	assert.Equal(t, "Denim Jeans", rec.Name)
}

func TestDeriveLegacyView(t *testing.T) {
	rec := ToWardrobeItem(sampleItem(), "u1", "p.jpg", 1)

	require.Equal(t, []string{"navy", "white"}, rec.Legacy.Colors)
	assert.Equal(t, []string{"cotton"}, rec.Legacy.Materials)
	assert.Equal(t, []string{"solid"}, rec.Legacy.Patterns)
	assert.Equal(t, "casual", rec.Legacy.Style)
	assert.Equal(t, []string{"casual"}, rec.Legacy.Occasion)
	assert.Equal(t, []string{"all"}, rec.Legacy.Season)
}

func TestFallbackIDIsOneBased(t *testing.T) {
	assert.Equal(t, "img1#3", FallbackID("img1", 3))
	assert.Equal(t, "img.png#1", FallbackID("img.png", 1))
}
