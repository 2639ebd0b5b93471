package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gestir-app/wardrobe-tracker/constants"
	"github.com/gestir-app/wardrobe-tracker/gen/ent"
	"github.com/gestir-app/wardrobe-tracker/internal/entity"
	"github.com/gestir-app/wardrobe-tracker/internal/utils"
)

// RunRepository records best-effort audit rows around pipeline runs.
type RunRepository interface {
	Start(ctx context.Context, ownerID, imageRef, modelName string) (*entity.IngestRun, error)
	Finish(ctx context.Context, id uuid.UUID, status constants.RunStatus, itemCount int, errMsg string) error
}

type runRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRunRepository(client *ent.Client, logger *slog.Logger) RunRepository {
	return &runRepository{client: client, logger: logger}
}

func (r *runRepository) Start(ctx context.Context, ownerID, imageRef, modelName string) (*entity.IngestRun, error) {
	rec, err := r.client.IngestRun.Create().
		SetOwnerID(ownerID).
		SetImageRef(imageRef).
		SetStatus(string(constants.RunStatusRunning)).
		SetModelName(modelName).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start ingest run", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return utils.ToIngestRun(rec), nil
}

func (r *runRepository) Finish(ctx context.Context, id uuid.UUID, status constants.RunStatus, itemCount int, errMsg string) error {
	upd := r.client.IngestRun.UpdateOneID(id).
		SetStatus(string(status)).
		SetItemCount(itemCount).
		SetFinishedAt(time.Now())
	if errMsg != "" {
		upd = upd.SetErrorMessage(errMsg)
	}
	if err := upd.Exec(ctx); err != nil {
		r.logger.Error("failed to finish ingest run", "run_id", id, "error", err)
		return err
	}
	return nil
}
