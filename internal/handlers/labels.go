package handlers

import (
	"net/http"

	"textmark/internal/contextutil"
	"textmark/internal/service"
)

// LabelHandler handles HTTP requests for annotation labels.
type LabelHandler struct {
	labels service.LabelService
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labels service.LabelService) *LabelHandler {
	return &LabelHandler{labels: labels}
}

// LabelRequest is the JSON payload for creating or replacing a label.
type LabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LabelResponse represents a label in API responses.
type LabelResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// List handles GET /labels.
func (h *LabelHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	labels, err := h.labels.List(ctx)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to list labels")
		return
	}

	resp := make([]LabelResponse, len(labels))
	for i, l := range labels {
		resp[i] = toLabelResponse(l)
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Create handles POST /labels.
func (h *LabelHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LabelRequest
	if err := decodeJSON(r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	label, err := h.labels.Create(ctx, service.LabelRequest{Name: req.Name, Color: req.Color})
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to create label")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toLabelResponse(label))
}

// Get handles GET /labels/{id}.
func (h *LabelHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	label, err := h.labels.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to get label")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toLabelResponse(label))
}

// Update handles PUT /labels/{id}.
func (h *LabelHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req LabelRequest
	if err := decodeJSON(r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	label, err := h.labels.Update(ctx, id, service.LabelRequest{Name: req.Name, Color: req.Color})
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to update label")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toLabelResponse(label))
}

// Delete handles DELETE /labels/{id}. Labels in use answer 409.
func (h *LabelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.labels.Delete(ctx, id); err != nil {
		writeServiceError(ctx, w, err, "Failed to delete label")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toLabelResponse(l service.Label) LabelResponse {
	return LabelResponse{ID: l.ID, Name: l.Name, Color: l.Color}
}
