package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/proteincraft/rincraft/pkg/config"
	"github.com/proteincraft/rincraft/pkg/export"
	"github.com/proteincraft/rincraft/pkg/rin"
	"github.com/proteincraft/rincraft/pkg/topology"
)

func main() {
	scoreFile := flag.String("scores", "", "Path to prediction score file")
	ringDir := flag.String("ring-dir", "", "Directory with *_ringNodes / *_ringEdges files")
	outFile := flag.String("out", "combined_metrics.csv", "Output CSV path")
	configFile := flag.String("config", "", "Optional YAML pipeline config")
	workers := flag.Int("workers", 0, "Parallel structure workers (0 = config value)")
	compress := flag.Bool("compress", false, "Also write a snappy-compressed copy of the CSV")
	s3Upload := flag.Bool("s3", false, "Upload results to S3 (configured via sinks.s3)")
	pgStore := flag.Bool("pg", false, "Store per-structure rows in PostgreSQL (configured via sinks.postgres)")
	flag.Parse()

	if *scoreFile == "" || *ringDir == "" {
		fmt.Println("Usage: rin-batch --scores score.txt --ring-dir ./ring [--out combined.csv] [--workers 4] [--compress] [--s3] [--pg]")
		os.Exit(1)
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if *compress {
		cfg.Batch.Compress = true
	}

	runID := uuid.New()
	logger.Info("starting batch run",
		"run_id", runID.String(),
		"scores", *scoreFile,
		"ring_dir", *ringDir,
		"workers", cfg.Batch.Workers,
	)

	table, err := export.ParseScoreFile(*scoreFile)
	if err != nil {
		logger.Error("failed to parse score file", "error", err)
		os.Exit(1)
	}
	logger.Info("score file parsed", "columns", len(table.Header), "rows", len(table.Rows))

	start := time.Now()
	metrics := analyzeStructures(table, *ringDir, cfg.Batch.Workers, logger)
	logger.Info("structures analyzed",
		"count", len(metrics),
		"duration_sec", time.Since(start).Seconds(),
	)

	var buf bytes.Buffer
	if err := export.WriteCombinedCSV(&buf, table, metrics); err != nil {
		logger.Error("failed to build combined CSV", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outFile, buf.Bytes(), 0644); err != nil {
		logger.Error("failed to write output CSV", "error", err)
		os.Exit(1)
	}
	logger.Info("combined CSV written", "path", *outFile, "bytes", buf.Len())

	if cfg.Batch.Compress {
		compressedPath := *outFile + export.SnappyExt
		if err := export.WriteSnappyFile(compressedPath, buf.Bytes()); err != nil {
			logger.Error("failed to write compressed CSV", "error", err)
			os.Exit(1)
		}
		logger.Info("compressed CSV written", "path", compressedPath)
	}

	ctx := context.Background()

	if *s3Upload {
		if cfg.Sinks.S3 == nil {
			logger.Error("s3 upload requested but sinks.s3 is not configured")
			os.Exit(1)
		}
		uploader, err := export.NewS3Uploader(ctx, cfg.Sinks.S3.Bucket, cfg.Sinks.S3.Prefix, cfg.Sinks.S3.Region, nil)
		if err != nil {
			logger.Error("failed to create s3 uploader", "error", err)
			os.Exit(1)
		}
		name := runID.String() + "/" + filepath.Base(*outFile)
		key, err := uploader.Upload(ctx, name, "text/csv", buf.Bytes())
		if err != nil {
			logger.Error("s3 upload failed", "error", err)
			os.Exit(1)
		}
		logger.Info("results uploaded", "bucket", cfg.Sinks.S3.Bucket, "key", key)
	}

	if *pgStore {
		if cfg.Sinks.Postgres == nil {
			logger.Error("postgres sink requested but sinks.postgres is not configured")
			os.Exit(1)
		}
		databaseURL := os.Getenv("RINCRAFT_PG_URL")
		if databaseURL == "" {
			logger.Error("RINCRAFT_PG_URL is not set")
			os.Exit(1)
		}
		store, err := export.NewPGStore(ctx, databaseURL)
		if err != nil {
			logger.Error("failed to open postgres store", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		stored := 0
		for structure, m := range metrics {
			if err := store.InsertMetrics(ctx, runID, structure, m); err != nil {
				logger.Error("failed to store metrics row", "structure", structure, "error", err)
				continue
			}
			stored++
		}
		logger.Info("metrics stored in postgres", "rows", stored)
	}

	logger.Info("batch run complete", "run_id", runID.String())
}

// analyzeStructures imports and analyzes every structure named in the
// score table, fanning rows out over a fixed worker pool. Structures
// with missing or unreadable RIN files keep zeroed metrics.
func analyzeStructures(table *export.ScoreTable, ringDir string, workers int, logger *slog.Logger) map[string]topology.StructureMetrics {
	if workers < 1 {
		workers = 1
	}

	type job struct {
		description string
	}

	jobs := make(chan job)
	var mu sync.Mutex
	metrics := make(map[string]topology.StructureMetrics, len(table.Rows))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				m, ok := analyzeOne(ringDir, j.description, logger)
				if !ok {
					continue
				}
				mu.Lock()
				metrics[j.description] = m
				mu.Unlock()
			}
		}()
	}

	seen := make(map[string]bool, len(table.Rows))
	for _, row := range table.Rows {
		description := table.Description(row)
		if description == "" || seen[description] {
			continue
		}
		seen[description] = true
		jobs <- job{description: description}
	}
	close(jobs)
	wg.Wait()

	return metrics
}

func analyzeOne(ringDir, description string, logger *slog.Logger) (topology.StructureMetrics, bool) {
	nodeFile := filepath.Join(ringDir, description+".pdb_ringNodes")
	edgeFile := filepath.Join(ringDir, description+".pdb_ringEdges")

	if !fileExists(nodeFile) || !fileExists(edgeFile) {
		logger.Warn("RIN files missing, metrics zeroed", "structure", description)
		return topology.StructureMetrics{}, false
	}

	importer := rin.NewImporter(nil, nil)
	g, report, err := importer.ImportFiles(nodeFile, edgeFile)
	if err != nil {
		logger.Warn("could not process RIN files, metrics zeroed",
			"structure", description, "error", err)
		return topology.StructureMetrics{}, false
	}
	if !report.Clean() {
		logger.Warn("import tolerated malformed input",
			"structure", description,
			"short_rows", report.ShortRows,
			"unknown_refs", report.UnknownRefs,
			"field_defaults", report.FieldDefaults,
		)
	}

	return topology.NewAnalyzer(nil, nil).ComputeStructureMetrics(g), true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
