package utils

import (
	"time"

	"github.com/gestir-app/wardrobe-tracker/gen/ent"
	wardrobev1 "github.com/gestir-app/wardrobe-tracker/gen/proto/wardrobe/v1"
	"github.com/gestir-app/wardrobe-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToWardrobeItem(e *ent.WardrobeItem) *entity.WardrobeItem {
	return &entity.WardrobeItem{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		Name:            e.Name,
		Category:        e.Category,
		Subcategory:     e.Subcategory,
		ColorName:       e.ColorName,
		ColorHex:        e.ColorHex,
		SecondaryColors: e.SecondaryColors,
		Pattern:         e.Pattern,
		MaterialFamily:  e.MaterialFamily,
		Fit:             e.Fit,
		Length:          e.Length,
		Rise:            e.Rise,
		Sleeve:          e.Sleeve,
		Neckline:        e.Neckline,
		DominantFinish:  e.DominantFinish,
		BrandText:       e.BrandText,
		Notes:           e.Notes,
		Confidence:      e.Confidence,
		Legacy:          e.Legacy,
		ImageRef:        e.ImageRef,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		SourceID:        e.SourceID,
	}
}

func ToIngestRun(e *ent.IngestRun) *entity.IngestRun {
	return &entity.IngestRun{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		ImageRef:     e.ImageRef,
		Status:       e.Status,
		ItemCount:    e.ItemCount,
		ErrorMessage: e.ErrorMessage,
		ModelName:    e.ModelName,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
	}
}

func ToPBItem(r *entity.WardrobeItem) *wardrobev1.WardrobeItem {
	return &wardrobev1.WardrobeItem{
		Id:              r.ID.String(),
		OwnerId:         r.OwnerID,
		Name:            r.Name,
		Category:        r.Category,
		Subcategory:     r.Subcategory,
		ColorName:       r.ColorName,
		ColorHex:        r.ColorHex,
		SecondaryColors: r.SecondaryColors,
		Pattern:         r.Pattern,
		MaterialFamily:  r.MaterialFamily,
		Fit:             r.Fit,
		Length:          r.Length,
		Rise:            r.Rise,
		Sleeve:          r.Sleeve,
		Neckline:        r.Neckline,
		DominantFinish:  r.DominantFinish,
		BrandText:       r.BrandText,
		Notes:           r.Notes,
		Confidence:      r.Confidence,
		Legacy: &wardrobev1.LegacyView{
			Colors:    r.Legacy.Colors,
			Materials: r.Legacy.Materials,
			Patterns:  r.Legacy.Patterns,
			Style:     r.Legacy.Style,
			Occasion:  r.Legacy.Occasion,
			Season:    r.Legacy.Season,
		},
		ImageRef:  r.ImageRef,
		SourceId:  r.SourceID,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
