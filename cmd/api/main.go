package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"textmark/internal/config"
	"textmark/internal/http"
	"textmark/internal/importer"
	"textmark/internal/markdown"
	"textmark/internal/service"
	"textmark/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	documentRepo := storage.NewDocumentRepo(db)
	labelRepo := storage.NewLabelRepo(db)
	annotationRepo := storage.NewAnnotationRepo(db)

	renderer := markdown.NewRenderer()

	// Create services
	documentService := service.NewDocumentService(documentRepo, renderer)
	labelService := service.NewLabelService(labelRepo)
	annotationService := service.NewAnnotationService(annotationRepo, documentRepo, labelRepo)

	// Create router with dependencies
	deps := &http.Deps{
		DocumentService:   documentService,
		LabelService:      labelService,
		AnnotationService: annotationService,
		Renderer:          renderer,
		DB:                db,
		MaxUploadBytes:    cfg.MaxUploadBytes,
		DefaultListLimit:  cfg.DocumentsPageLimit,
	}
	router := http.NewRouter(deps)

	// Import documents in background after router is ready
	if cfg.ImportDir != "" {
		docImporter := importer.NewImporter(documentService)
		go func() {
			importCtx := context.Background()
			slog.Info("Starting background import", "dir", cfg.ImportDir)
			if _, err := docImporter.ImportAll(importCtx, cfg.ImportDir); err != nil {
				slog.Error("Import completed with errors", "error", err)
			} else {
				slog.Info("Import completed successfully")
			}
		}()
	}

	// Start API server
	addr := ":" + cfg.APIPort
	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("Starting API server", "addr", addr, "max_upload_bytes", cfg.MaxUploadBytes)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
