package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_service.go -package=mocks textmark/internal/service DocumentService

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zeebo/blake3"

	"textmark/internal/chunker"
	"textmark/internal/contextutil"
	"textmark/internal/storage"
)

const maxTitleRunes = 255

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a stored text document.
type Document struct {
	ID          string
	Title       string
	Content     string
	ContentHash string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateDocumentRequest creates a document from JSON input.
type CreateDocumentRequest struct {
	Title   string
	Content string
}

// UploadDocumentRequest creates a document from an uploaded file.
type UploadDocumentRequest struct {
	Filename string
	Data     []byte
}

// UpdateDocumentRequest changes a document. Nil fields are left unchanged.
type UpdateDocumentRequest struct {
	Title   *string
	Content *string
}

// ListDocumentsRequest selects a window of documents.
type ListDocumentsRequest struct {
	Limit  int
	Offset int
}

// DocumentList is a window of documents plus the total count.
type DocumentList struct {
	Count     int
	Documents []Document
}

// ChunksRequest asks for one page of a document's paragraph chunks.
type ChunksRequest struct {
	DocumentID string
	Page       int
	PageSize   int
}

// ChunkPage is one page of chunks of a stored document.
type ChunkPage struct {
	DocumentID  string
	ContentHash string
	chunker.PageResult
}

// TitleExtractor derives a document title from uploaded markdown.
type TitleExtractor interface {
	Title(content []byte, filename string) string
}

// DocumentService manages documents and serves their chunk pages.
type DocumentService interface {
	// Create stores a new document from title and content.
	Create(ctx context.Context, req CreateDocumentRequest) (Document, error)
	// Upload stores a new document from a .txt or .md file.
	Upload(ctx context.Context, req UploadDocumentRequest) (Document, error)
	// Get returns a document by ID.
	Get(ctx context.Context, id string) (Document, error)
	// List returns a window of documents, newest first.
	List(ctx context.Context, req ListDocumentsRequest) (DocumentList, error)
	// Update changes title and/or content. Existing annotations keep their text.
	Update(ctx context.Context, id string, req UpdateDocumentRequest) (Document, error)
	// Delete removes a document and its annotations.
	Delete(ctx context.Context, id string) error
	// Chunks returns one page of the document's paragraph chunks.
	Chunks(ctx context.Context, req ChunksRequest) (ChunkPage, error)
}

// documentService implements DocumentService.
type documentService struct {
	store  storage.DocumentStore
	titles TitleExtractor
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(store storage.DocumentStore, titles TitleExtractor) DocumentService {
	return &documentService{
		store:  store,
		titles: titles,
	}
}

func (s *documentService) Create(ctx context.Context, req CreateDocumentRequest) (Document, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.Content) == "" {
		return Document{}, &ValidationError{Field: "content", Message: "cannot be blank"}
	}
	if utf8.RuneCountInString(req.Title) > maxTitleRunes {
		return Document{}, &ValidationError{Field: "title", Message: "must be at most 255 characters"}
	}

	doc, err := s.create(ctx, req.Title, req.Content)
	if err != nil {
		return Document{}, err
	}

	logger.InfoContext(ctx, "document created", "document_id", doc.ID, "content_length", len(doc.Content))
	return doc, nil
}

func (s *documentService) Upload(ctx context.Context, req UploadDocumentRequest) (Document, error) {
	logger := contextutil.LoggerFromContext(ctx)

	filename := filepath.Base(strings.TrimSpace(req.Filename))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return Document{}, &ValidationError{Field: "file", Message: "file not found"}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".txt" && ext != ".md" {
		logger.WarnContext(ctx, "rejected upload with unsupported extension", "filename", filename)
		return Document{}, &ValidationError{Field: "file", Message: "only .txt and .md files are allowed"}
	}

	data := bytes.TrimPrefix(req.Data, utf8BOM)
	if !utf8.Valid(data) {
		logger.WarnContext(ctx, "rejected upload with invalid encoding", "filename", filename)
		return Document{}, &ValidationError{Field: "file", Message: "cannot decode file, check encoding"}
	}

	title := filename
	if ext == ".md" && s.titles != nil {
		title = s.titles.Title(data, filename)
	}

	doc, err := s.create(ctx, truncateRunes(title, maxTitleRunes), string(data))
	if err != nil {
		return Document{}, err
	}

	logger.InfoContext(ctx, "document uploaded", "document_id", doc.ID, "filename", filename, "size", len(data))
	return doc, nil
}

func (s *documentService) create(ctx context.Context, title, content string) (Document, error) {
	content = chunker.Normalize(content)
	rec := &storage.DocumentRecord{
		Title:       title,
		Content:     content,
		ContentHash: contentHash(content),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to store document", "error", err)
		return Document{}, WrapError(err, "failed to store document")
	}
	return documentFromRecord(rec), nil
}

func (s *documentService) Get(ctx context.Context, id string) (Document, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return Document{}, storeError(err, "failed to get document")
	}
	return documentFromRecord(rec), nil
}

func (s *documentService) List(ctx context.Context, req ListDocumentsRequest) (DocumentList, error) {
	if req.Limit < 1 {
		return DocumentList{}, &ValidationError{Field: "limit", Message: "must be a positive integer"}
	}
	if req.Offset < 0 {
		return DocumentList{}, &ValidationError{Field: "offset", Message: "must not be negative"}
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return DocumentList{}, WrapError(err, "failed to count documents")
	}
	recs, err := s.store.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return DocumentList{}, WrapError(err, "failed to list documents")
	}

	docs := make([]Document, len(recs))
	for i := range recs {
		docs[i] = documentFromRecord(&recs[i])
	}
	return DocumentList{Count: count, Documents: docs}, nil
}

func (s *documentService) Update(ctx context.Context, id string, req UpdateDocumentRequest) (Document, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return Document{}, &ValidationError{Field: "content", Message: "cannot be blank"}
	}
	if req.Title != nil && utf8.RuneCountInString(*req.Title) > maxTitleRunes {
		return Document{}, &ValidationError{Field: "title", Message: "must be at most 255 characters"}
	}

	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return Document{}, storeError(err, "failed to get document")
	}

	if req.Title != nil {
		rec.Title = *req.Title
	}
	if req.Content != nil {
		rec.Content = chunker.Normalize(*req.Content)
		rec.ContentHash = contentHash(rec.Content)
	}

	if err := s.store.Update(ctx, rec); err != nil {
		return Document{}, storeError(err, "failed to update document")
	}

	logger.InfoContext(ctx, "document updated", "document_id", id, "content_changed", req.Content != nil)
	return documentFromRecord(rec), nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return storeError(err, "failed to delete document")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "document deleted", "document_id", id)
	return nil
}

func (s *documentService) Chunks(ctx context.Context, req ChunksRequest) (ChunkPage, error) {
	logger := contextutil.LoggerFromContext(ctx)

	rec, err := s.store.GetByID(ctx, req.DocumentID)
	if err != nil {
		return ChunkPage{}, storeError(err, "failed to get document")
	}

	result, err := chunker.Page(rec.Content, req.Page, req.PageSize)
	switch {
	case errors.Is(err, chunker.ErrInvalidParameter):
		field := "page"
		if req.Page >= 1 {
			field = "page_size"
		}
		return ChunkPage{}, &ValidationError{Field: field, Message: "must be a positive integer"}
	case errors.Is(err, chunker.ErrOutOfRange):
		logger.DebugContext(ctx, "chunk page out of range", "document_id", req.DocumentID, "page", req.Page, "page_size", req.PageSize)
		return ChunkPage{}, WrapError(ErrPageOutOfRange, err.Error())
	case err != nil:
		return ChunkPage{}, WrapError(err, "failed to chunk document")
	}

	return ChunkPage{
		DocumentID:  rec.ID,
		ContentHash: rec.ContentHash,
		PageResult:  result,
	}, nil
}

func documentFromRecord(rec *storage.DocumentRecord) Document {
	return Document{
		ID:          rec.ID,
		Title:       rec.Title,
		Content:     rec.Content,
		ContentHash: rec.ContentHash,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

// FileHash returns the content hash a document uploaded from data would get.
func FileHash(data []byte) string {
	return contentHash(chunker.Normalize(string(bytes.TrimPrefix(data, utf8BOM))))
}

// contentHash returns the hex BLAKE3 digest of content.
func contentHash(content string) string {
	sum := blake3.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
