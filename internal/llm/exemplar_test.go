package llm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExemplarsReadsKnownAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "studio.jpg"), []byte{0xFF, 0xD8}, 0o644))

	exs := LoadExemplars(dir)
	require.Len(t, exs, 1)
	assert.Equal(t, "image/jpeg", exs[0].MimeType)
	assert.JSONEq(t, exemplarExpected, exs[0].Expected)

	// The expected text itself must satisfy the extraction contract.
	res, err := ParseExtraction([]byte(exs[0].Expected))
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
}

func TestLoadExemplarsMissingAssetsAreSkipped(t *testing.T) {
	assert.Empty(t, LoadExemplars(t.TempDir()))
	assert.Empty(t, LoadExemplars(""))
}
