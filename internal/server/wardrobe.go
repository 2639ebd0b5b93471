package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	wardrobev1 "github.com/gestir-app/wardrobe-tracker/gen/proto/wardrobe/v1"
	"github.com/gestir-app/wardrobe-tracker/internal/common"
	"github.com/gestir-app/wardrobe-tracker/internal/utils"
)

// ListItems returns a user's wardrobe records, newest first.
func (s *WardrobeService) ListItems(ctx context.Context, req *wardrobev1.ListItemsRequest) (*wardrobev1.ListItemsResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}

	recs, err := s.wardrobe.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("list wardrobe items failed", "owner_id", ownerID, "error", err)
		return nil, common.InternalError("list wardrobe items failed")
	}

	out := &wardrobev1.ListItemsResponse{Items: make([]*wardrobev1.WardrobeItem, 0, len(recs))}
	for _, r := range recs {
		out.Items = append(out.Items, utils.ToPBItem(r))
	}
	return out, nil
}

// ExportWardrobe returns the user's wardrobe as an XLSX workbook.
func (s *WardrobeService) ExportWardrobe(ctx context.Context, req *wardrobev1.ExportWardrobeRequest) (*wardrobev1.ExportWardrobeResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}

	b, err := s.exporter.ExportWardrobeXLSX(ctx, ownerID)
	if err != nil {
		s.logger.Error("wardrobe export failed", "owner_id", ownerID, "error", err)
		return nil, common.InternalError("wardrobe export failed")
	}

	return &wardrobev1.ExportWardrobeResponse{
		Xlsx:     b,
		Filename: fmt.Sprintf("wardrobe-%s.xlsx", time.Now().UTC().Format("20060102")),
	}, nil
}
