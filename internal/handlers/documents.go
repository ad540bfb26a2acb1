package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"textmark/internal/contextutil"
	"textmark/internal/service"
)

const uploadField = "file"

// DocumentHandler handles HTTP requests for documents.
type DocumentHandler struct {
	documents      service.DocumentService
	maxUploadBytes int64
	defaultLimit   int
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documents service.DocumentService, maxUploadBytes int64, defaultLimit int) *DocumentHandler {
	return &DocumentHandler{
		documents:      documents,
		maxUploadBytes: maxUploadBytes,
		defaultLimit:   defaultLimit,
	}
}

// DocumentRequest is the JSON payload for creating or replacing a document.
type DocumentRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// DocumentResponse represents a document in API responses.
type DocumentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DocumentListResponse is a limit/offset window of documents.
type DocumentListResponse struct {
	Count   int                `json:"count"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
	Results []DocumentResponse `json:"results"`
}

// List handles GET /documents?limit=&offset=.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := queryInt(r, "limit", h.defaultLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.documents.List(ctx, service.ListDocumentsRequest{Limit: limit, Offset: offset})
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to list documents")
		return
	}

	resp := DocumentListResponse{
		Count:   list.Count,
		Limit:   limit,
		Offset:  offset,
		Results: make([]DocumentResponse, len(list.Documents)),
	}
	for i, doc := range list.Documents {
		resp.Results[i] = toDocumentResponse(doc)
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Create handles POST /documents.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	var req DocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		h.writeBodyError(w, err)
		return
	}

	svcReq := service.CreateDocumentRequest{}
	if req.Title != nil {
		svcReq.Title = *req.Title
	}
	if req.Content != nil {
		svcReq.Content = *req.Content
	}

	doc, err := h.documents.Create(ctx, svcReq)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to create document")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toDocumentResponse(doc))
}

// Upload handles POST /documents/upload with a multipart "file" field.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		logger.WarnContext(ctx, "upload without file", "error", err)
		h.writeBodyError(w, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.WarnContext(ctx, "failed to read upload", "error", err)
		h.writeBodyError(w, err)
		return
	}

	doc, err := h.documents.Upload(ctx, service.UploadDocumentRequest{
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to upload document")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toDocumentResponse(doc))
}

// Get handles GET /documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.documents.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to get document")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toDocumentResponse(doc))
}

// Update handles PUT /documents/{id}. Omitted fields are left unchanged.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	var req DocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		h.writeBodyError(w, err)
		return
	}

	doc, err := h.documents.Update(ctx, chi.URLParam(r, "id"), service.UpdateDocumentRequest{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to update document")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toDocumentResponse(doc))
}

// Delete handles DELETE /documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.documents.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(ctx, w, err, "Failed to delete document")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DocumentHandler) writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, http.ErrMissingFile):
		writeError(w, http.StatusBadRequest, "file not found")
	default:
		writeError(w, http.StatusBadRequest, "Invalid request body")
	}
}

func toDocumentResponse(doc service.Document) DocumentResponse {
	return DocumentResponse{
		ID:          doc.ID,
		Title:       doc.Title,
		Content:     doc.Content,
		ContentHash: doc.ContentHash,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
