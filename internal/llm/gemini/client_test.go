package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestir-app/wardrobe-tracker/internal/llm"
)

func candidateResponse(texts ...string) map[string]any {
	parts := make([]map[string]any, len(texts))
	for i, tx := range texts {
		parts[i] = map[string]any{"text": tx}
	}
	return map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": parts}},
		},
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gemini-2.5-flash",
	}, nil)
}

func sampleRequest() llm.ExtractRequest {
	return llm.ExtractRequest{
		OwnerID:   "u1",
		ImageRef:  "closet/p.jpg",
		ImageData: []byte{0xFF, 0xD8, 0xFF, 0xE0},
		MimeType:  "image/jpeg",
	}
}

func TestExtractGarmentsBuildsStructuredRequest(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(candidateResponse(`{"items":[],"warnings":[]}`))
	}))
	defer srv.Close()

	raw, err := newTestClient(srv.URL).ExtractGarments(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"warnings":[]}`, string(raw))

	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	gen, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "application/json", gen["responseMimeType"])
	assert.NotNil(t, gen["responseSchema"])

	contents, ok := gotBody["contents"].([]any)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(contents), 3)

	// Last two turns are the inlined target image and the photoRef note.
	imgTurn := contents[len(contents)-2].(map[string]any)
	imgParts := imgTurn["parts"].([]any)
	inline := imgParts[0].(map[string]any)["inlineData"].(map[string]any)
	assert.Equal(t, "image/jpeg", inline["mimeType"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF, 0xE0}), inline["data"])

	noteTurn := contents[len(contents)-1].(map[string]any)
	noteParts := noteTurn["parts"].([]any)
	assert.Contains(t, noteParts[0].(map[string]any)["text"], "closet/p.jpg")
}

func TestExtractGarmentsJoinsCandidateParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(candidateResponse(`{"items":[],`, `"warnings":[]}`))
	}))
	defer srv.Close()

	raw, err := newTestClient(srv.URL).ExtractGarments(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"warnings":[]}`, string(raw))
}

func TestExtractGarmentsSurfacesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ExtractGarments(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestExtractGarmentsNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ExtractGarments(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestExtractGarmentsRequestExemplarsOverrideBundled(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(candidateResponse(`{"items":[],"warnings":[]}`))
	}))
	defer srv.Close()

	req := sampleRequest()
	req.Exemplars = []llm.Exemplar{{
		Image:    []byte{0x01},
		MimeType: "image/png",
		Expected: `{"items":[],"warnings":[]}`,
	}}

	_, err := newTestClient(srv.URL).ExtractGarments(context.Background(), req)
	require.NoError(t, err)

	// prompt + exemplar image + exemplar expectation + target image + note
	contents := gotBody["contents"].([]any)
	assert.Len(t, contents, 5)
}
