package pipeline

import (
	"fmt"

	"github.com/gestir-app/wardrobe-tracker/internal/llm"
)

// FilterByConfidence partitions validated items into accepted and rejected
// sets by threshold. Order is preserved; accepted = {i : i.confidence >= t}.
func FilterByConfidence(items []llm.ExtractionItem, threshold float64) (accepted, rejected []llm.ExtractionItem) {
	for _, it := range items {
		if it.Confidence >= threshold {
			accepted = append(accepted, it)
		} else {
			rejected = append(rejected, it)
		}
	}
	return accepted, rejected
}

// LowConfidenceWarning is the single aggregate warning recorded when any
// items are rejected. Never one warning per item.
func LowConfidenceWarning(rejected int) string {
	return fmt.Sprintf("%d items had low confidence and were excluded", rejected)
}
