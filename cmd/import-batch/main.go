package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/pipetrak/pipetrak/internal/async"
	"github.com/pipetrak/pipetrak/internal/common"
	"github.com/pipetrak/pipetrak/internal/importer"
	repo "github.com/pipetrak/pipetrak/internal/repository"
	"github.com/pipetrak/pipetrak/internal/services/imports"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		file    = flag.String("file", "", "takeoff file to import (.xlsx, .csv or .json envelope; required)")
		project = flag.String("project", "Local Import", "project name to import into (created if missing)")
		preview = flag.Bool("preview", false, "stop after validation, print the preview and write nothing")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client

	// Wire repositories
	projectsRepo := repo.NewProjectRepository(entc, logger)
	jobsRepo := repo.NewImportJobRepository(entc, logger)
	metadataRepo := repo.NewMetadataRepository(entc, logger)
	drawingsRepo := repo.NewDrawingRepository(entc, logger)
	componentsRepo := repo.NewComponentRepository(entc, logger)
	weldsRepo := repo.NewFieldWeldRepository(entc, logger)
	weldersRepo := repo.NewWelderRepository(entc, logger)

	proj, err := projectsRepo.GetOrCreateByName(ctx, *project)
	if err != nil {
		logger.Error("failed to get or create project", "error", err)
		os.Exit(1)
	}
	logger.Info("using project", "id", proj.ID, "name", proj.Name)

	writer := importer.NewBulkWriter(metadataRepo, drawingsRepo, componentsRepo, weldsRepo, weldersRepo, logger)
	svc := imports.NewService(projectsRepo, jobsRepo, metadataRepo, writer, cfg.Import.MaxPayloadBytes, logger)
	queue := async.NewImportQueue(svc, logger, async.WithWorkers(1))
	svc.AttachQueue(queue)
	defer queue.Shutdown(ctx)

	payload, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("failed to read input file", "file", *file, "error", err)
		os.Exit(1)
	}

	req := imports.Request{
		ProjectID: proj.ID.String(),
		Filename:  filepath.Base(*file),
		Payload:   payload,
	}

	if *preview {
		p, err := svc.PreviewImport(ctx, req)
		if err != nil {
			logger.Error("preview failed", "error", err)
			os.Exit(1)
		}
		out, _ := json.MarshalIndent(p, "", "  ")
		fmt.Println(string(out))
		return
	}

	result, job, err := svc.ExecuteImport(ctx, req)
	if err != nil {
		logger.Error("import failed", "error", err)
		if result != nil {
			out, _ := json.MarshalIndent(result, "", "  ")
			fmt.Println(string(out))
		}
		os.Exit(1)
	}

	logger.Info("import completed",
		"job_id", job.ID,
		"drawings", result.DrawingsCreated,
		"components", result.ComponentsCreated,
		"welds", result.WeldsCreated,
		"duration_ms", result.DurationMS,
	)
	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
}
