// Package importer loads a directory of .txt and .md files into the
// document store, skipping files whose content is already stored.
package importer

import (
	"context"
	"fmt"
	"os"

	"textmark/internal/chunker"
	"textmark/internal/contextutil"
	"textmark/internal/service"
)

const listPageSize = 100

// Stats summarizes an import run.
type Stats struct {
	Files    int `json:"files"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
	Chunks   int `json:"chunks"` // Paragraph chunks across imported documents
}

// Importer uploads scanned files through the document service.
type Importer struct {
	docs service.DocumentService
}

// NewImporter creates a new importer.
func NewImporter(docs service.DocumentService) *Importer {
	return &Importer{docs: docs}
}

// ImportAll scans root and imports every new file.
// Errors for individual files are logged but don't stop the run.
func (im *Importer) ImportAll(ctx context.Context, root string) (Stats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	files, err := Scan(ctx, root)
	if err != nil {
		return Stats{}, err
	}

	seen, err := im.existingHashes(ctx)
	if err != nil {
		return Stats{}, err
	}

	logger.InfoContext(ctx, "starting import", "root", root, "total_files", len(files), "existing_documents", len(seen))

	stats := Stats{Files: len(files)}
	for _, file := range files {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		chunks, imported, err := im.ImportFile(ctx, file, seen)
		switch {
		case err != nil:
			stats.Failed++
			logger.ErrorContext(ctx, "failed to import file", "rel_path", file.RelPath, "error", err)
		case !imported:
			stats.Skipped++
		default:
			stats.Imported++
			stats.Chunks += chunks
		}
	}

	logger.InfoContext(ctx, "import completed",
		"total_files", stats.Files,
		"imported", stats.Imported,
		"skipped", stats.Skipped,
		"errors", stats.Failed,
		"chunks", stats.Chunks,
	)

	if stats.Failed > 0 {
		return stats, fmt.Errorf("import completed with %d errors", stats.Failed)
	}
	return stats, nil
}

// ImportFile uploads one file unless its content hash is in seen, and records
// the hash on success. It returns the new document's chunk count.
func (im *Importer) ImportFile(ctx context.Context, file ScannedFile, seen map[string]struct{}) (int, bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	data, err := os.ReadFile(file.AbsPath)
	if err != nil {
		return 0, false, fmt.Errorf("failed to read file %s: %w", file.AbsPath, err)
	}

	hash := service.FileHash(data)
	if _, ok := seen[hash]; ok {
		logger.DebugContext(ctx, "skipping unchanged file", "rel_path", file.RelPath, "hash", hash)
		return 0, false, nil
	}

	doc, err := im.docs.Upload(ctx, service.UploadDocumentRequest{
		Filename: file.RelPath,
		Data:     data,
	})
	if err != nil {
		return 0, false, err
	}
	seen[doc.ContentHash] = struct{}{}

	chunks := len(chunker.Split(doc.Content))
	logger.InfoContext(ctx, "imported file", "rel_path", file.RelPath, "document_id", doc.ID, "chunks", chunks, "title", doc.Title)
	return chunks, true, nil
}

// existingHashes collects the content hash of every stored document.
func (im *Importer) existingHashes(ctx context.Context) (map[string]struct{}, error) {
	seen := make(map[string]struct{})
	offset := 0
	for {
		list, err := im.docs.List(ctx, service.ListDocumentsRequest{Limit: listPageSize, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}
		for _, doc := range list.Documents {
			seen[doc.ContentHash] = struct{}{}
		}
		offset += len(list.Documents)
		if len(list.Documents) == 0 || offset >= list.Count {
			return seen, nil
		}
	}
}
