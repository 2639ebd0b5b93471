package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGarmentJSONSchemaAcceptsFullDocument(t *testing.T) {
	doc := map[string]any{
		"items":    []any{validWireItem()},
		"warnings": []any{},
	}
	b, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONAgainstSchema(BuildGarmentJSONSchema(), b))
}

func TestGarmentJSONSchemaRequiresWarnings(t *testing.T) {
	b, err := json.Marshal(map[string]any{"items": []any{}})
	require.NoError(t, err)

	assert.Error(t, ValidateJSONAgainstSchema(BuildGarmentJSONSchema(), b))
}

func TestGarmentItemSchemaOptionalAttributesAreEnums(t *testing.T) {
	it := validWireItem()
	it["sleeve"] = "extra-long"
	b, err := json.Marshal(it)
	require.NoError(t, err)

	assert.Error(t, ValidateJSONAgainstSchema(BuildGarmentItemSchema(), b))

	it["sleeve"] = "long"
	b, err = json.Marshal(it)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildGarmentItemSchema(), b))
}

func TestCompileSchemaRejectsInvalidSchema(t *testing.T) {
	_, err := CompileSchema(map[string]any{"type": 42})
	assert.Error(t, err)
}
