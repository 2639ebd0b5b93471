package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gestir-app/wardrobe-tracker/constants"
	"github.com/gestir-app/wardrobe-tracker/internal/common"
	"github.com/gestir-app/wardrobe-tracker/internal/entity"
	"github.com/gestir-app/wardrobe-tracker/internal/ingest"
	"github.com/gestir-app/wardrobe-tracker/internal/llm"
)

// Stage names, used as failure causes and log fields.
const (
	stageValidatingInput    = "validating_input"
	stageBuildingRequest    = "building_request"
	stageAwaitingInference  = "awaiting_inference"
	stageValidatingResponse = "validating_response"
	stageFiltering          = "filtering"
	stageTransforming       = "transforming"
	stageCommitting         = "committing"
)

// RecordStore is the persistence capability the pipeline depends on.
// SaveBatch must commit all records in a single atomic batch, assigning
// store identifiers; on failure nothing may be durably written.
type RecordStore interface {
	SaveBatch(ctx context.Context, items []*entity.WardrobeItem) ([]*entity.WardrobeItem, error)
}

// Request is the inbound shape exposed to the orchestration layer.
type Request struct {
	OwnerID  string `json:"ownerId"`
	ImageRef string `json:"imageRef"`
}

// Result is the single outbound shape. Exactly one of {Success with
// Records, Error with Success=false} holds; a run that filtered every item
// is still a success with an empty record list.
type Result struct {
	Success  bool                   `json:"success"`
	Records  []*entity.WardrobeItem `json:"records"`
	Warnings []string               `json:"warnings"`
	Error    string                 `json:"error,omitempty"`

	// Cause carries the taxonomy sentinel for the boundary layer;
	// it never reaches callers in a stage-specific shape.
	Cause error `json:"-"`
}

// Config is explicit per-pipeline policy, passed at construction so
// concurrent runs can use different thresholds without interference.
type Config struct {
	MinConfidence float64
}

// Pipeline sequences one photo ingestion: build request, await inference,
// validate, filter, transform, commit. One sequential unit of work per
// run; runs for different owners never share state.
type Pipeline struct {
	extractor llm.GarmentExtractor
	images    ingest.ImageSource
	store     RecordStore
	cfg       Config
	logger    *slog.Logger
}

func New(extractor llm.GarmentExtractor, images ingest.ImageSource, store RecordStore, cfg Config, logger *slog.Logger) *Pipeline {
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = constants.MinConfidenceDefault
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		extractor: extractor,
		images:    images,
		store:     store,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run executes the full ingestion for one photo. Every stage failure is
// converted into the single outbound failure shape; no internal retry.
func (p *Pipeline) Run(ctx context.Context, req Request) Result {
	rid := uuid.New().String()
	start := time.Now()

	p.logger.Info("ingest.run.start",
		"req_id", rid,
		"owner_id", req.OwnerID,
		"image_ref", req.ImageRef,
		"min_confidence", p.cfg.MinConfidence,
	)

	// ValidatingInput
	if strings.TrimSpace(req.OwnerID) == "" {
		return p.fail(rid, start, stageValidatingInput, common.ErrInvalidInput, errors.New("ownerId is required"))
	}
	if strings.TrimSpace(req.ImageRef) == "" {
		return p.fail(rid, start, stageValidatingInput, common.ErrInvalidInput, errors.New("imageRef is required"))
	}

	// BuildingRequest: resolve the photo to inline bytes and assemble the
	// provider request. Exemplars are bundled by the provider client.
	data, mimeType, err := p.images.Fetch(ctx, req.ImageRef)
	if err != nil {
		return p.fail(rid, start, stageBuildingRequest, common.ErrInvalidInput, err)
	}
	extractReq := llm.ExtractRequest{
		OwnerID:   req.OwnerID,
		ImageRef:  req.ImageRef,
		ImageData: data,
		MimeType:  mimeType,
	}

	// AwaitingInference
	raw, err := p.extractor.ExtractGarments(ctx, extractReq)
	if err != nil {
		return p.fail(rid, start, stageAwaitingInference, common.ErrProvider, err)
	}

	// ValidatingResponse
	parsed, err := llm.ParseExtraction(raw)
	if err != nil {
		if errors.Is(err, llm.ErrMalformedResponse) {
			return p.fail(rid, start, stageValidatingResponse, common.ErrProvider, err)
		}
		// Schema violations signal provider drift, not user error.
		p.logger.Error("ingest.validate.schema_violation",
			"req_id", rid, "image_ref", req.ImageRef, "error", err)
		return p.fail(rid, start, stageValidatingResponse, common.ErrValidation, err)
	}

	// Filtering
	warnings := append([]string{}, parsed.Warnings...)
	accepted, rejected := FilterByConfidence(parsed.Items, p.cfg.MinConfidence)
	if len(rejected) > 0 {
		warnings = append(warnings, LowConfidenceWarning(len(rejected)))
	}
	if len(parsed.Items) == 0 {
		warnings = append(warnings, "no garments detected in photo")
	}

	// Transforming
	records := make([]*entity.WardrobeItem, 0, len(accepted))
	for i, item := range accepted {
		records = append(records, ToWardrobeItem(item, req.OwnerID, req.ImageRef, i+1))
	}

	// Committing: all records as one atomic batch; zero accepted items is
	// still a successful (empty) commit.
	saved, err := p.store.SaveBatch(ctx, records)
	if err != nil {
		return p.fail(rid, start, stageCommitting, common.ErrPersistence, err)
	}

	p.logger.Info("ingest.run.ok",
		"req_id", rid,
		"owner_id", req.OwnerID,
		"extracted", len(parsed.Items),
		"accepted", len(accepted),
		"rejected", len(rejected),
		"committed", len(saved),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Success: true, Records: saved, Warnings: warnings}
}

func (p *Pipeline) fail(rid string, start time.Time, stage string, kind, cause error) Result {
	err := fmt.Errorf("%s: %w: %v", stage, kind, cause)
	p.logger.Error("ingest.run.failed",
		"req_id", rid,
		"stage", stage,
		"error", cause,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Success:  false,
		Warnings: []string{},
		Error:    err.Error(),
		Cause:    kind,
	}
}
