package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gestir-app/wardrobe-tracker/internal/repository"
)

// Service is a tiny façade over the wardrobe repository that produces XLSX
// bytes for exports.
type Service struct {
	wardrobeRepo repository.WardrobeRepository
	logger       *slog.Logger
}

func NewService(repo repository.WardrobeRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{wardrobeRepo: repo, logger: logger}
}

// ExportWardrobeXLSX returns an XLSX workbook (as bytes) listing all of a
// user's wardrobe records, newest first.
func (s *Service) ExportWardrobeXLSX(ctx context.Context, ownerID string) ([]byte, error) {
	start := time.Now()

	recs, err := s.wardrobeRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query wardrobe: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Wardrobe"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Category",
		"Subcategory",
		"Colors",
		"Material",
		"Pattern",
		"Confidence",
		"Brand",
		"Photo",
		"Added",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Name)
		write(2, r.Category)
		write(3, r.Subcategory)
		write(4, strings.Join(r.Legacy.Colors, ", "))
		write(5, r.MaterialFamily)
		write(6, r.Pattern)
		write(7, fmt.Sprintf("%.2f", r.Confidence))
		write(8, r.BrandText)
		write(9, r.ImageRef)
		write(10, r.CreatedAt.UTC().Format("2006-01-02"))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 28) // name
	_ = f.SetColWidth(sheet, "D", "D", 24) // colors
	_ = f.SetColWidth(sheet, "I", "I", 40) // photo ref

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.wardrobe.ok",
		"owner_id", ownerID,
		"rows", len(recs),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
