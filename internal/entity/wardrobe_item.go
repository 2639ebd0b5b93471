package entity

import (
	"time"

	"github.com/google/uuid"
)

// WardrobeItem represents one durable garment record for data transfer
// between layers. The ID is assigned by the store at commit time; a zero
// UUID marks a record that has not been persisted yet.
type WardrobeItem struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`

	// Detailed garment attributes, copied verbatim from the validated
	// extraction item.
	ColorName       string   `json:"color_name"`
	ColorHex        string   `json:"color_hex"`
	SecondaryColors []string `json:"secondary_colors,omitempty"`
	Pattern         string   `json:"pattern"`
	MaterialFamily  string   `json:"material_family"`
	Fit             string   `json:"fit,omitempty"`
	Length          string   `json:"length,omitempty"`
	Rise            string   `json:"rise,omitempty"`
	Sleeve          string   `json:"sleeve,omitempty"`
	Neckline        string   `json:"neckline,omitempty"`
	DominantFinish  string   `json:"dominant_finish,omitempty"`
	BrandText       string   `json:"brand_text,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Confidence      float64  `json:"confidence"`

	// Legacy is computed from the detailed attributes at transformation
	// time, never stored independently, so the two views cannot drift.
	Legacy LegacyView `json:"legacy"`

	ImageRef  string    `json:"image_ref"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// SourceID is the provider-assigned (or synthesized) extraction id,
	// kept for traceability back to the photo.
	SourceID string `json:"source_id"`
}

// LegacyView is the flattened shape older consumers still read.
type LegacyView struct {
	Colors    []string `json:"colors"`
	Materials []string `json:"materials"`
	Patterns  []string `json:"patterns"`
	Style     string   `json:"style"`
	Occasion  []string `json:"occasion"`
	Season    []string `json:"season"`
}
