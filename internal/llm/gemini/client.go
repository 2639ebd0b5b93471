package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gestir-app/wardrobe-tracker/internal/llm"
)

// content/part mirror the generateContent wire format.
type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

// ExtractGarments implements llm.GarmentExtractor against the Gemini
// generateContent REST API with a structured output constraint. It returns
// the model's raw text; parsing and re-validation happen in the core.
func (c *Client) ExtractGarments(ctx context.Context, req llm.ExtractRequest) ([]byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"image_ref", req.ImageRef,
		"image_bytes", len(req.ImageData),
		"mime_type", req.MimeType,
		"exemplars", len(c.exemplars),
	)

	exemplars := req.Exemplars
	if len(exemplars) == 0 {
		exemplars = c.exemplars
	}

	contents := []content{
		{Role: "user", Parts: []part{{Text: llm.BuildSystemPrompt()}}},
	}
	for _, ex := range exemplars {
		contents = append(contents,
			content{Role: "user", Parts: []part{{InlineData: &inlineData{
				MimeType: ex.MimeType,
				Data:     base64.StdEncoding.EncodeToString(ex.Image),
			}}}},
			content{Role: "user", Parts: []part{{Text: ex.Expected}}},
		)
	}
	contents = append(contents,
		content{Role: "user", Parts: []part{{InlineData: &inlineData{
			MimeType: req.MimeType,
			Data:     base64.StdEncoding.EncodeToString(req.ImageData),
		}}}},
		content{Role: "user", Parts: []part{{Text: llm.BuildPhotoRefNote(req.ImageRef)}}},
	)

	body := map[string]any{
		"contents": contents,
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema":   llm.BuildGarmentJSONSchema(),
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model + ":generateContent"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var gc struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	if len(gc.Candidates) == 0 {
		c.logger.Error("llm.extract.no_candidates",
			"req_id", rid, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("no candidates in gemini response")
	}

	var sb strings.Builder
	for _, p := range gc.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"text_bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return []byte(text), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Warn("gemini response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
