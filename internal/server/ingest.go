package server

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gestir-app/wardrobe-tracker/constants"
	wardrobev1 "github.com/gestir-app/wardrobe-tracker/gen/proto/wardrobe/v1"
	"github.com/gestir-app/wardrobe-tracker/internal/common"
	"github.com/gestir-app/wardrobe-tracker/internal/pipeline"
	"github.com/gestir-app/wardrobe-tracker/internal/utils"
)

// IngestPhoto runs the full ingestion pipeline for one photo. The pipeline
// result is always mapped to the single response shape; failures inside a
// run never surface as RPC errors, only malformed requests do.
func (s *WardrobeService) IngestPhoto(ctx context.Context, req *wardrobev1.IngestPhotoRequest) (*wardrobev1.IngestPhotoResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	imageRef := strings.TrimSpace(req.GetImageRef())

	v := common.NewValidator().
		Field("owner_id", ownerID, common.Required).
		Field("image_ref", imageRef, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("ingest request rejected", "error", v.ErrorMessage())
		return nil, err
	}

	run := s.startRun(ctx, ownerID, imageRef)

	result := s.pipeline.Run(ctx, pipeline.Request{OwnerID: ownerID, ImageRef: imageRef})

	s.finishRun(ctx, run, result)

	resp := &wardrobev1.IngestPhotoResponse{
		Success:  result.Success,
		Warnings: result.Warnings,
		Error:    result.Error,
	}
	for _, r := range result.Records {
		resp.Records = append(resp.Records, utils.ToPBItem(r))
	}
	return resp, nil
}

// startRun opens a best-effort audit row. A nil return disables the
// matching finishRun; audit failures never affect the run itself.
func (s *WardrobeService) startRun(ctx context.Context, ownerID, imageRef string) *runHandle {
	if s.runs == nil {
		return nil
	}
	rec, err := s.runs.Start(ctx, ownerID, imageRef, s.modelName)
	if err != nil {
		s.logger.Warn("ingest run audit unavailable", "owner_id", ownerID, "error", err)
		return nil
	}
	return &runHandle{id: rec.ID}
}

func (s *WardrobeService) finishRun(ctx context.Context, run *runHandle, result pipeline.Result) {
	if run == nil {
		return
	}
	status := constants.RunStatusDone
	if !result.Success {
		status = constants.RunStatusFailed
	}
	if err := s.runs.Finish(ctx, run.id, status, len(result.Records), result.Error); err != nil {
		s.logger.Warn("ingest run audit update failed", "run_id", run.id, "error", err)
	}
}

type runHandle struct {
	id uuid.UUID
}
