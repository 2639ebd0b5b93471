package llm

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Terminal validation failures for one extraction run.
var (
	// ErrMalformedResponse: the provider output did not parse as JSON.
	ErrMalformedResponse = errors.New("malformed provider response")
	// ErrInvalidResponseShape: parsed, but the top-level 'items' list is
	// missing or has the wrong type.
	ErrInvalidResponseShape = errors.New("invalid response shape")
	// ErrInvalidItemData: an item violated the extraction schema. The whole
	// run aborts: partial silent corruption of a garment record is worse
	// than losing the photo's extraction.
	ErrInvalidItemData = errors.New("invalid item data")
)

// ParseExtraction parses and structurally verifies raw provider output
// against the garment schema. On success it returns the validated items
// plus the provider-supplied warnings, unchanged.
func ParseExtraction(raw []byte) (*ExtractionResult, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	itemsRaw, ok := top["items"]
	if !ok {
		return nil, fmt.Errorf("%w: missing 'items'", ErrInvalidResponseShape)
	}
	var rawItems []json.RawMessage
	if err := json.Unmarshal(itemsRaw, &rawItems); err != nil {
		return nil, fmt.Errorf("%w: 'items' is not a list", ErrInvalidResponseShape)
	}

	schema, err := CompileSchema(BuildGarmentItemSchema())
	if err != nil {
		return nil, err
	}
	items := make([]ExtractionItem, 0, len(rawItems))
	for i, ri := range rawItems {
		var v any
		if err := json.Unmarshal(ri, &v); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidItemData, i+1, err)
		}
		if err := schema.Validate(v); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidItemData, i+1, err)
		}
		var item ExtractionItem
		if err := json.Unmarshal(ri, &item); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidItemData, i+1, err)
		}
		items = append(items, item)
	}

	var warnings []string
	if wRaw, ok := top["warnings"]; ok {
		if err := json.Unmarshal(wRaw, &warnings); err != nil {
			return nil, fmt.Errorf("%w: 'warnings' is not a list of strings", ErrInvalidResponseShape)
		}
	}

	return &ExtractionResult{Items: items, Warnings: warnings}, nil
}
