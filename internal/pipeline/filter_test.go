package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestir-app/wardrobe-tracker/internal/llm"
)

func items(confidences ...float64) []llm.ExtractionItem {
	out := make([]llm.ExtractionItem, len(confidences))
	for i, c := range confidences {
		out[i] = llm.ExtractionItem{ID: "x", Confidence: c}
	}
	return out
}

func TestFilterByConfidencePartitionsAndPreservesOrder(t *testing.T) {
	accepted, rejected := FilterByConfidence(items(0.9, 0.2, 0.5, 0.1), 0.3)

	assert.Equal(t, []float64{0.9, 0.5}, confidencesOf(accepted))
	assert.Equal(t, []float64{0.2, 0.1}, confidencesOf(rejected))
}

func TestFilterByConfidenceThresholdIsInclusive(t *testing.T) {
	accepted, rejected := FilterByConfidence(items(0.3), 0.3)

	assert.Len(t, accepted, 1)
	assert.Empty(t, rejected)
}

func TestFilterByConfidenceEmptyInput(t *testing.T) {
	accepted, rejected := FilterByConfidence(nil, 0.3)

	assert.Empty(t, accepted)
	assert.Empty(t, rejected)
}

func TestLowConfidenceWarningFormat(t *testing.T) {
	assert.Equal(t, "3 items had low confidence and were excluded", LowConfidenceWarning(3))
}

func confidencesOf(its []llm.ExtractionItem) []float64 {
	out := make([]float64, len(its))
	for i, it := range its {
		out[i] = it.Confidence
	}
	return out
}
