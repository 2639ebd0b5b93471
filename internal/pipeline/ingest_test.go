package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestir-app/wardrobe-tracker/internal/common"
	"github.com/gestir-app/wardrobe-tracker/internal/entity"
	"github.com/gestir-app/wardrobe-tracker/internal/llm"
)

type fakeExtractor struct {
	raw     []byte
	err     error
	calls   int
	lastReq llm.ExtractRequest
}

func (f *fakeExtractor) ExtractGarments(_ context.Context, req llm.ExtractRequest) ([]byte, error) {
	f.calls++
	f.lastReq = req
	return f.raw, f.err
}

type fakeImages struct {
	data []byte
	mime string
	err  error
}

func (f *fakeImages) Fetch(context.Context, string) ([]byte, string, error) {
	return f.data, f.mime, f.err
}

type fakeStore struct {
	batches [][]*entity.WardrobeItem
	err     error
}

func (f *fakeStore) SaveBatch(_ context.Context, items []*entity.WardrobeItem) ([]*entity.WardrobeItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, items)
	return items, nil
}

func wireItem(id string, confidence float64) map[string]any {
	return map[string]any{
		"id":             id,
		"category":       "top",
		"subcategory":    "t-shirt",
		"colorName":      "navy",
		"colorHex":       "#1F2A44",
		"pattern":        "solid",
		"materialFamily": "cotton",
		"confidence":     confidence,
	}
}

func wireResponse(t *testing.T, items []map[string]any, warnings []string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{"items": items, "warnings": warnings})
	require.NoError(t, err)
	return b
}

func newTestPipeline(ex *fakeExtractor, st *fakeStore) *Pipeline {
	images := &fakeImages{data: []byte("jpeg-bytes"), mime: "image/jpeg"}
	return New(ex, images, st, Config{MinConfidence: 0.3}, nil)
}

func TestRunFiltersLowConfidenceItems(t *testing.T) {
	ex := &fakeExtractor{raw: wireResponse(t, []map[string]any{
		wireItem("photos/p1.jpg#1", 0.9),
		wireItem("photos/p1.jpg#2", 0.2),
		wireItem("photos/p1.jpg#3", 0.5),
	}, []string{})}
	st := &fakeStore{}

	result := newTestPipeline(ex, st).Run(context.Background(), Request{OwnerID: "u1", ImageRef: "photos/p1.jpg"})

	require.True(t, result.Success, result.Error)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "photos/p1.jpg#1", result.Records[0].SourceID)
	assert.Equal(t, "photos/p1.jpg#3", result.Records[1].SourceID)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "1 items had low confidence and were excluded", result.Warnings[0])

	require.Len(t, st.batches, 1)
	assert.Len(t, st.batches[0], 2)
}

func TestRunMissingItemsListAbortsWithoutWriting(t *testing.T) {
	ex := &fakeExtractor{raw: []byte(`{"warnings":[]}`)}
	st := &fakeStore{}

	result := newTestPipeline(ex, st).Run(context.Background(), Request{OwnerID: "u1", ImageRef: "p.jpg"})

	require.False(t, result.Success)
	assert.True(t, errors.Is(result.Cause, common.ErrValidation))
	assert.Contains(t, result.Error, "validating_response")
	assert.Empty(t, st.batches)
}

func TestRunOneInvalidItemAbortsWholeRun(t *testing.T) {
	its := make([]map[string]any, 0, 9)
	for i := 1; i <= 8; i++ {
		its = append(its, wireItem(fmt.Sprintf("p.jpg#%d", i), 0.8))
	}
	bad := wireItem("p.jpg#9", 0.8)
	bad["colorHex"] = "blue"
	its = append(its, bad)
	ex := &fakeExtractor{raw: wireResponse(t, its, []string{})}
	st := &fakeStore{}

	result := newTestPipeline(ex, st).Run(context.Background(), Request{OwnerID: "u1", ImageRef: "p.jpg"})

	require.False(t, result.Success)
	assert.True(t, errors.Is(result.Cause, common.ErrValidation))
	assert.Empty(t, st.batches)
}

func TestRunUnparseableResponseIsProviderFailure(t *testing.T) {
	ex := &fakeExtractor{raw: []byte("sorry, I cannot help with that")}
	st := &fakeStore{}

	result := newTestPipeline(ex, st).Run(context.Background(), Request{OwnerID: "u1", ImageRef: "p.jpg"})

	require.False(t, result.Success)
	assert.True(t, errors.Is(result.Cause, common.ErrProvider))
	assert.Empty(t, st.batches)
}

func TestRunExtractorErrorIsProviderFailure(t *testing.T) {
	ex := &fakeExtractor{err: errors.New("status 503")}
	st := &fakeStore{}

	result := newTestPipeline(ex, st).Run(context.Background(), Request{OwnerID: "u1", ImageRef: "p.jpg"})

	require.False(t, result.Success)
	assert.True(t, errors.Is(result.Cause, common.ErrProvider))
	assert.Contains(t, result.Error, "awaiting_inference")
}

func TestRunZeroItemsIsSuccessWithWarning(t *testing.T) {
	ex := &fakeExtractor{raw: wireResponse(t, []map[string]any{}, []string{})}
	st := &fakeStore{}

	result := newTestPipeline(ex, st).Run(context.Background(), Request{OwnerID: "u1", ImageRef: "p.jpg"})

	require.True(t, result.Success, result.Error)
	assert.Empty(t, result.Records)
	assert.Contains(t, result.Warnings, "no garments detected in photo")
}

func TestRunAllItemsFilteredIsStillSuccess(t *testing.T) {
	ex := &fakeExtractor{raw: wireResponse(t, []map[string]any{
		wireItem("p.jpg#1", 0.1),
		wireItem("p.jpg#2", 0.05),
	}, []string{})}
	st := &fakeStore{}

	result := newTestPipeline(ex, st).Run(context.Background(), Request{OwnerID: "u1", ImageRef: "p.jpg"})

	require.True(t, result.Success, result.Error)
	assert.Empty(t, result.Records)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "2 items had low confidence and were excluded", result.Warnings[0])
}

func TestRunProviderWarningsPassThrough(t *testing.T) {
	ex := &fakeExtractor{raw: wireResponse(t, []map[string]any{
		wireItem("p.jpg#1", 0.9),
		wireItem("p.jpg#2", 0.1),
	}, []string{"image partially occluded"})}
	st := &fakeStore{}

	result := newTestPipeline(ex, st).Run(context.Background(), Request{OwnerID: "u1", ImageRef: "p.jpg"})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, []string{
		"image partially occluded",
		"1 items had low confidence and were excluded",
	}, result.Warnings)
}

func TestRunRejectsBlankInput(t *testing.T) {
	ex := &fakeExtractor{}
	st := &fakeStore{}
	p := newTestPipeline(ex, st)

	for _, req := range []Request{
		{OwnerID: "", ImageRef: "p.jpg"},
		{OwnerID: "u1", ImageRef: "   "},
	} {
		result := p.Run(context.Background(), req)
		require.False(t, result.Success)
		assert.True(t, errors.Is(result.Cause, common.ErrInvalidInput))
	}
	assert.Zero(t, ex.calls)
}

func TestRunFetchFailureIsInvalidInput(t *testing.T) {
	ex := &fakeExtractor{}
	images := &fakeImages{err: errors.New("stat image: no such file")}
	st := &fakeStore{}
	p := New(ex, images, st, Config{MinConfidence: 0.3}, nil)

	result := p.Run(context.Background(), Request{OwnerID: "u1", ImageRef: "missing.jpg"})

	require.False(t, result.Success)
	assert.True(t, errors.Is(result.Cause, common.ErrInvalidInput))
	assert.Zero(t, ex.calls)
}

func TestRunCommitFailureIsPersistenceFailure(t *testing.T) {
	ex := &fakeExtractor{raw: wireResponse(t, []map[string]any{
		wireItem("p.jpg#1", 0.9),
	}, []string{})}
	st := &fakeStore{err: errors.New("connection reset")}

	result := newTestPipeline(ex, st).Run(context.Background(), Request{OwnerID: "u1", ImageRef: "p.jpg"})

	require.False(t, result.Success)
	assert.True(t, errors.Is(result.Cause, common.ErrPersistence))
	assert.Contains(t, result.Error, "committing")
	assert.Empty(t, result.Records)
}

func TestRunForwardsImageBytesToExtractor(t *testing.T) {
	ex := &fakeExtractor{raw: wireResponse(t, []map[string]any{}, []string{})}
	images := &fakeImages{data: []byte{0xFF, 0xD8, 0xFF}, mime: "image/jpeg"}
	p := New(ex, images, &fakeStore{}, Config{}, nil)

	result := p.Run(context.Background(), Request{OwnerID: "u1", ImageRef: "closet/p.jpg"})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "u1", ex.lastReq.OwnerID)
	assert.Equal(t, "closet/p.jpg", ex.lastReq.ImageRef)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, ex.lastReq.ImageData)
	assert.Equal(t, "image/jpeg", ex.lastReq.MimeType)
}
