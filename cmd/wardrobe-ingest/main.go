package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gestir-app/wardrobe-tracker/constants"
	"github.com/gestir-app/wardrobe-tracker/internal/export"
	"github.com/gestir-app/wardrobe-tracker/internal/ingest"
	"github.com/gestir-app/wardrobe-tracker/internal/llm/gemini"
	"github.com/gestir-app/wardrobe-tracker/internal/pipeline"
	"github.com/gestir-app/wardrobe-tracker/internal/repository"
)

// wardrobe-ingest runs the ingestion pipeline against one photo or a
// directory of photos, without the gRPC server. Handy for seeding a local
// database and for eyeballing provider output.
func main() {
	var (
		owner         = flag.String("owner", "", "owner id to attribute records to (required)")
		image         = flag.String("image", "", "photo to ingest: local path or http(s) URL")
		dir           = flag.String("dir", "", "ingest every image under this directory")
		dbPath        = flag.String("db", "wardrobe.db", "sqlite database path")
		model         = flag.String("model", "", "override inference model name")
		assetsDir     = flag.String("assets", "", "directory of few-shot exemplar images")
		minConfidence = flag.Float64("min-confidence", constants.MinConfidenceDefault, "records below this confidence are dropped")
		exportPath    = flag.String("export", "", "after ingesting, write the owner's wardrobe to this XLSX file")
		verbose       = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *owner == "" || (*image == "" && *dir == "") {
		printError("usage: wardrobe-ingest -owner <id> (-image <path|url> | -dir <path>)")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := context.Background()

	client, err := repository.OpenLite(ctx, *dbPath, logger)
	if err != nil {
		printError("open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		_ = client.Close()
	}()

	extractor := gemini.NewClient(gemini.Config{
		Model:     *model,
		AssetsDir: *assetsDir,
		Timeout:   90 * time.Second,
	}, logger)

	wardrobeRepo := repository.NewWardrobeRepository(client, logger)
	pipe := pipeline.New(extractor, ingest.NewFetcher(0), wardrobeRepo, pipeline.Config{
		MinConfidence: *minConfidence,
	}, logger)

	refs := []string{*image}
	if *dir != "" {
		refs, err = ingest.WalkImages(*dir)
		if err != nil {
			printError("walk %s: %v", *dir, err)
			os.Exit(1)
		}
		if len(refs) == 0 {
			printError("no images found under %s", *dir)
			os.Exit(1)
		}
	}

	failed := 0
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, ref := range refs {
		result := pipe.Run(ctx, pipeline.Request{OwnerID: *owner, ImageRef: ref})
		if err := enc.Encode(result); err != nil {
			printError("encode result: %v", err)
			os.Exit(1)
		}
		if !result.Success {
			failed++
		}
	}

	if *exportPath != "" {
		b, err := export.NewService(wardrobeRepo, logger).ExportWardrobeXLSX(ctx, *owner)
		if err != nil {
			printError("export wardrobe: %v", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*exportPath, b, 0o644); err != nil {
			printError("write %s: %v", *exportPath, err)
			os.Exit(1)
		}
		logger.Info("wardrobe exported", "path", *exportPath)
	}

	if failed > 0 {
		printError("%d of %d photos failed", failed, len(refs))
		os.Exit(1)
	}
}

func printError(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}
