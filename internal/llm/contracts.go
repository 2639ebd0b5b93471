package llm

import "context"

// ExtractionItem is one candidate garment as returned by the inference
// provider, pre-validation. Field names match the wire contract.
type ExtractionItem struct {
	ID              string   `json:"id"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	ColorName       string   `json:"colorName"`
	ColorHex        string   `json:"colorHex"` // #RRGGBB
	SecondaryColors []string `json:"secondaryColors,omitempty"`
	Pattern         string   `json:"pattern"`
	MaterialFamily  string   `json:"materialFamily"`
	Fit             string   `json:"fit,omitempty"`
	Length          string   `json:"length,omitempty"`
	Rise            string   `json:"rise,omitempty"`
	Sleeve          string   `json:"sleeve,omitempty"`
	Neckline        string   `json:"neckline,omitempty"`
	DominantFinish  string   `json:"dominantFinish,omitempty"`
	BrandText       string   `json:"brandText,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Confidence      float64  `json:"confidence"` // 0..1
}

// ExtractionResult is the validated top-level batch shape.
type ExtractionResult struct {
	Items    []ExtractionItem `json:"items"`
	Warnings []string         `json:"warnings"`
}

// Exemplar is an optional few-shot image plus its expected JSON output,
// bundled into the request to steer the provider's formatting.
type Exemplar struct {
	Image    []byte
	MimeType string
	Expected string
}

// ExtractRequest carries everything the request builder needs. OwnerID is
// only used downstream when records are created; it is never sent to the
// provider.
type ExtractRequest struct {
	OwnerID   string
	ImageRef  string
	ImageData []byte
	MimeType  string
	Exemplars []Exemplar
}

// GarmentExtractor is the capability interface the pipeline depends on.
// Implementations submit the built request to the inference provider and
// return its raw text output; parsing and validation happen in the core.
type GarmentExtractor interface {
	ExtractGarments(ctx context.Context, req ExtractRequest) ([]byte, error)
}
