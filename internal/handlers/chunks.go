package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"textmark/internal/contextutil"
	"textmark/internal/service"
)

// Renderer turns markdown source into HTML.
type Renderer interface {
	Render(src string) (string, error)
}

// ChunkHandler serves paginated paragraph chunks of a document.
type ChunkHandler struct {
	documents   service.DocumentService
	annotations service.AnnotationService
	renderer    Renderer
}

// NewChunkHandler creates a new ChunkHandler.
func NewChunkHandler(documents service.DocumentService, annotations service.AnnotationService, renderer Renderer) *ChunkHandler {
	return &ChunkHandler{
		documents:   documents,
		annotations: annotations,
		renderer:    renderer,
	}
}

// ChunkPageResponse is one page of a document's paragraph chunks.
// ChunkIndex, ChunkStart and ChunkEnd are null unless the page holds exactly one chunk.
type ChunkPageResponse struct {
	DocumentID  string   `json:"document_id"`
	Page        int      `json:"page"`
	PageSize    int      `json:"page_size"`
	HasNext     bool     `json:"has_next"`
	HasPrev     bool     `json:"has_prev"`
	TotalChunks int      `json:"total_chunks"`
	Chunk       []string `json:"chunk"`
	ChunkIndex  *int     `json:"chunk_index"`
	ChunkStart  *int     `json:"chunk_start"`
	ChunkEnd    *int     `json:"chunk_end"`
}

// Get handles GET /documents/{id}/chunks?page=&page_size=.
func (h *ChunkHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, ok := h.loadPage(w, r)
	if !ok {
		return
	}

	etag := chunkETag(page)
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ChunkPageResponse{
		DocumentID:  page.DocumentID,
		Page:        page.Page,
		PageSize:    page.PageSize,
		HasNext:     page.HasNext,
		HasPrev:     page.HasPrev,
		TotalChunks: page.TotalChunks,
		Chunk:       page.Texts(),
		ChunkIndex:  page.ChunkIndex,
		ChunkStart:  page.ChunkStart,
		ChunkEnd:    page.ChunkEnd,
	})
}

// View handles GET /documents/{id}/chunks/view and renders the page as HTML,
// listing the annotations that overlap it.
func (h *ChunkHandler) View(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	page, ok := h.loadPage(w, r)
	if !ok {
		return
	}

	annotations, err := h.annotations.List(ctx, page.DocumentID)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to list annotations")
		return
	}

	data := viewData{
		DocumentID:  page.DocumentID,
		Page:        page.Page,
		PageSize:    page.PageSize,
		TotalChunks: page.TotalChunks,
		HasPrev:     page.HasPrev,
		HasNext:     page.HasNext,
	}
	for _, c := range page.Chunks {
		html, err := h.renderer.Render(c.Text)
		if err != nil {
			logger.ErrorContext(ctx, "failed to render chunk", "chunk_index", c.Index, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to render chunk")
			return
		}
		view := chunkView{
			Index: c.Index,
			Start: c.Offset,
			End:   c.End(),
			HTML:  template.HTML(html),
		}
		for _, a := range annotations {
			if overlaps(a, c.Offset, c.End()) {
				view.Annotations = append(view.Annotations, a)
			}
		}
		data.Chunks = append(data.Chunks, view)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := viewTemplate.Execute(w, data); err != nil {
		logger.ErrorContext(ctx, "failed to render chunk view", "error", err)
	}
}

// loadPage parses the paging query and fetches the page. It writes the error
// response itself and reports false when the request cannot be served.
func (h *ChunkHandler) loadPage(w http.ResponseWriter, r *http.Request) (service.ChunkPage, bool) {
	ctx := r.Context()

	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return service.ChunkPage{}, false
	}
	pageSize, err := queryInt(r, "page_size", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return service.ChunkPage{}, false
	}

	result, err := h.documents.Chunks(ctx, service.ChunksRequest{
		DocumentID: chi.URLParam(r, "id"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to get chunks")
		return service.ChunkPage{}, false
	}
	return result, true
}

// overlaps reports whether an annotation touches [start, end). Empty
// annotations count when they sit inside the range.
func overlaps(a service.Annotation, start, end int) bool {
	if a.Start == a.End {
		return a.Start >= start && a.Start < end
	}
	return a.Start < end && a.End > start
}

// chunkETag identifies a page of a specific document revision.
func chunkETag(page service.ChunkPage) string {
	hash := page.ContentHash
	if len(hash) > 16 {
		hash = hash[:16]
	}
	return fmt.Sprintf(`"%s-%d-%d"`, hash, page.Page, page.PageSize)
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

type chunkView struct {
	Index       int
	Start       int
	End         int
	HTML        template.HTML
	Annotations []service.Annotation
}

type viewData struct {
	DocumentID  string
	Page        int
	PageSize    int
	TotalChunks int
	HasPrev     bool
	HasNext     bool
	Chunks      []chunkView
}

var viewTemplate = template.Must(template.New("chunks").Funcs(template.FuncMap{
	"add": func(a, b int) int { return a + b },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document {{.DocumentID}} page {{.Page}}</title>
</head>
<body>
<header>Page {{.Page}} &middot; {{.TotalChunks}} chunks</header>
{{range .Chunks}}
<section id="chunk-{{.Index}}" data-start="{{.Start}}" data-end="{{.End}}">
{{.HTML}}
{{if .Annotations}}<ul class="annotations">
{{range .Annotations}}<li><mark style="background-color: {{.LabelColor}}">{{.LabelName}}</mark> [{{.Start}}, {{.End}}) {{.Text}}</li>
{{end}}</ul>{{end}}
</section>
{{else}}
<p>This document has no paragraphs.</p>
{{end}}
<nav>
{{if .HasPrev}}<a href="?page={{add .Page -1}}&amp;page_size={{.PageSize}}">Previous</a>{{end}}
{{if .HasNext}}<a href="?page={{add .Page 1}}&amp;page_size={{.PageSize}}">Next</a>{{end}}
</nav>
</body>
</html>
`))
