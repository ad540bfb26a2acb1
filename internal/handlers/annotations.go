package handlers

import (
	"net/http"
	"time"

	"textmark/internal/contextutil"
	"textmark/internal/service"
)

// AnnotationHandler handles HTTP requests for annotations.
type AnnotationHandler struct {
	annotations service.AnnotationService
}

// NewAnnotationHandler creates a new AnnotationHandler.
func NewAnnotationHandler(annotations service.AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{annotations: annotations}
}

// CreateAnnotationRequest is the JSON payload for creating an annotation.
// The annotated text is taken from the document, never from the client.
type CreateAnnotationRequest struct {
	Document string `json:"document"`
	Label    int64  `json:"label"`
	Start    *int   `json:"start"`
	End      *int   `json:"end"`
}

// UpdateAnnotationRequest is the JSON payload for relabelling an annotation.
type UpdateAnnotationRequest struct {
	Label int64 `json:"label"`
}

// AnnotationResponse represents an annotation in API responses.
type AnnotationResponse struct {
	ID         int64     `json:"id"`
	Document   string    `json:"document"`
	Label      int64     `json:"label"`
	LabelName  string    `json:"label_name"`
	LabelColor string    `json:"label_color"`
	Start      int       `json:"start"`
	End        int       `json:"end"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// List handles GET /annotations?document=.
func (h *AnnotationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	annotations, err := h.annotations.List(ctx, r.URL.Query().Get("document"))
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to list annotations")
		return
	}

	resp := make([]AnnotationResponse, len(annotations))
	for i, a := range annotations {
		resp[i] = toAnnotationResponse(a)
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Create handles POST /annotations.
func (h *AnnotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAnnotationRequest
	if err := decodeJSON(r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Start == nil || req.End == nil {
		writeError(w, http.StatusBadRequest, "start and end are required")
		return
	}

	a, err := h.annotations.Create(ctx, service.CreateAnnotationRequest{
		DocumentID: req.Document,
		LabelID:    req.Label,
		Start:      *req.Start,
		End:        *req.End,
	})
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to create annotation")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toAnnotationResponse(a))
}

// Get handles GET /annotations/{id}.
func (h *AnnotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.annotations.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to get annotation")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toAnnotationResponse(a))
}

// Update handles PATCH /annotations/{id}. Only the label can change.
func (h *AnnotationHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateAnnotationRequest
	if err := decodeJSON(r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.annotations.UpdateLabel(ctx, id, req.Label)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to update annotation")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toAnnotationResponse(a))
}

// Delete handles DELETE /annotations/{id}.
func (h *AnnotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.annotations.Delete(ctx, id); err != nil {
		writeServiceError(ctx, w, err, "Failed to delete annotation")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toAnnotationResponse(a service.Annotation) AnnotationResponse {
	return AnnotationResponse{
		ID:         a.ID,
		Document:   a.DocumentID,
		Label:      a.LabelID,
		LabelName:  a.LabelName,
		LabelColor: a.LabelColor,
		Start:      a.Start,
		End:        a.End,
		Text:       a.Text,
		CreatedAt:  a.CreatedAt,
	}
}
