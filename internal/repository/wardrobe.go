package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestir-app/wardrobe-tracker/gen/ent"
	"github.com/gestir-app/wardrobe-tracker/gen/ent/wardrobeitem"
	"github.com/gestir-app/wardrobe-tracker/internal/entity"
	"github.com/gestir-app/wardrobe-tracker/internal/utils"
)

// WardrobeRepository is the document-store capability consumed by the
// pipeline and the read-side services.
type WardrobeRepository interface {
	// SaveBatch writes all records in one transaction, assigning store
	// identifiers. Either every record is durably stored or none are.
	SaveBatch(ctx context.Context, items []*entity.WardrobeItem) ([]*entity.WardrobeItem, error)
	// ListByOwner returns a user's records, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.WardrobeItem, error)
}

type wardrobeRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewWardrobeRepository(client *ent.Client, logger *slog.Logger) WardrobeRepository {
	return &wardrobeRepository{
		client: client,
		logger: logger,
	}
}

func (r *wardrobeRepository) SaveBatch(ctx context.Context, items []*entity.WardrobeItem) ([]*entity.WardrobeItem, error) {
	if len(items) == 0 {
		return []*entity.WardrobeItem{}, nil
	}

	start := time.Now()
	tx, err := r.client.Tx(ctx)
	if err != nil {
		r.logger.Error("wardrobe.batch.tx_begin_failed", "error", err)
		return nil, fmt.Errorf("begin batch: %w", err)
	}

	saved := make([]*entity.WardrobeItem, 0, len(items))
	for i, it := range items {
		rec, err := tx.WardrobeItem.Create().
			SetOwnerID(it.OwnerID).
			SetName(it.Name).
			SetCategory(it.Category).
			SetSubcategory(it.Subcategory).
			SetColorName(it.ColorName).
			SetColorHex(it.ColorHex).
			SetSecondaryColors(it.SecondaryColors).
			SetPattern(it.Pattern).
			SetMaterialFamily(it.MaterialFamily).
			SetFit(it.Fit).
			SetLength(it.Length).
			SetRise(it.Rise).
			SetSleeve(it.Sleeve).
			SetNeckline(it.Neckline).
			SetDominantFinish(it.DominantFinish).
			SetBrandText(it.BrandText).
			SetNotes(it.Notes).
			SetConfidence(it.Confidence).
			SetLegacy(it.Legacy).
			SetImageRef(it.ImageRef).
			SetSourceID(it.SourceID).
			SetCreatedAt(it.CreatedAt).
			SetUpdatedAt(it.UpdatedAt).
			Save(ctx)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Error("wardrobe.batch.rollback_failed", "error", rbErr)
			}
			r.logger.Error("wardrobe.batch.insert_failed",
				"owner_id", it.OwnerID, "index", i, "error", err)
			return nil, fmt.Errorf("insert record %d: %w", i+1, err)
		}
		saved = append(saved, utils.ToWardrobeItem(rec))
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("wardrobe.batch.commit_failed", "error", err)
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	r.logger.Info("wardrobe.batch.committed",
		"count", len(saved),
		"owner_id", items[0].OwnerID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return saved, nil
}

func (r *wardrobeRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.WardrobeItem, error) {
	recs, err := r.client.WardrobeItem.Query().
		Where(wardrobeitem.OwnerID(ownerID)).
		Order(ent.Desc(wardrobeitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list wardrobe items", "owner_id", ownerID, "error", err)
		return nil, err
	}

	result := make([]*entity.WardrobeItem, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToWardrobeItem(rec)
	}
	return result, nil
}
