package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWireItem() map[string]any {
	return map[string]any{
		"id":             "p.jpg#1",
		"category":       "top",
		"subcategory":    "t-shirt",
		"colorName":      "navy",
		"colorHex":       "#1F2A44",
		"pattern":        "solid",
		"materialFamily": "cotton",
		"confidence":     0.9,
	}
}

func encode(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestParseExtractionValidPayload(t *testing.T) {
	raw := encode(t, map[string]any{
		"items":    []any{validWireItem()},
		"warnings": []string{"shadowed lighting"},
	})

	res, err := ParseExtraction(raw)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "p.jpg#1", res.Items[0].ID)
	assert.Equal(t, "top", res.Items[0].Category)
	assert.InDelta(t, 0.9, res.Items[0].Confidence, 1e-9)
	assert.Equal(t, []string{"shadowed lighting"}, res.Warnings)
}

func TestParseExtractionWarningsOptional(t *testing.T) {
	raw := encode(t, map[string]any{"items": []any{}})

	res, err := ParseExtraction(raw)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Empty(t, res.Warnings)
}

func TestParseExtractionNonJSON(t *testing.T) {
	_, err := ParseExtraction([]byte("I'm unable to identify garments here."))
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestParseExtractionMissingItems(t *testing.T) {
	_, err := ParseExtraction([]byte(`{"warnings":[]}`))
	assert.True(t, errors.Is(err, ErrInvalidResponseShape))
}

func TestParseExtractionItemsWrongType(t *testing.T) {
	_, err := ParseExtraction([]byte(`{"items":"none"}`))
	assert.True(t, errors.Is(err, ErrInvalidResponseShape))
}

func TestParseExtractionWarningsWrongType(t *testing.T) {
	raw := encode(t, map[string]any{"items": []any{}, "warnings": "fine"})
	_, err := ParseExtraction(raw)
	assert.True(t, errors.Is(err, ErrInvalidResponseShape))
}

func TestParseExtractionRejectsBadHexColor(t *testing.T) {
	it := validWireItem()
	it["colorHex"] = "blue"
	_, err := ParseExtraction(encode(t, map[string]any{"items": []any{it}}))
	assert.True(t, errors.Is(err, ErrInvalidItemData))
}

func TestParseExtractionRejectsUnknownCategory(t *testing.T) {
	it := validWireItem()
	it["category"] = "hat-like-thing"
	_, err := ParseExtraction(encode(t, map[string]any{"items": []any{it}}))
	assert.True(t, errors.Is(err, ErrInvalidItemData))
}

func TestParseExtractionRejectsOutOfRangeConfidence(t *testing.T) {
	it := validWireItem()
	it["confidence"] = 1.4
	_, err := ParseExtraction(encode(t, map[string]any{"items": []any{it}}))
	assert.True(t, errors.Is(err, ErrInvalidItemData))
}

func TestParseExtractionRejectsMissingRequiredField(t *testing.T) {
	it := validWireItem()
	delete(it, "materialFamily")
	_, err := ParseExtraction(encode(t, map[string]any{"items": []any{it}}))
	assert.True(t, errors.Is(err, ErrInvalidItemData))
}

func TestParseExtractionReportsOneBasedItemIndex(t *testing.T) {
	bad := validWireItem()
	bad["pattern"] = "zigzag"
	raw := encode(t, map[string]any{"items": []any{validWireItem(), bad}})

	_, err := ParseExtraction(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2")
}
