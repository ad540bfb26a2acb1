package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_annotation_service.go -package=mocks textmark/internal/service AnnotationService

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"textmark/internal/chunker"
	"textmark/internal/contextutil"
	"textmark/internal/storage"
)

const maxAnnotationRunes = 500

// Annotation is a labelled character range of a document.
type Annotation struct {
	ID         int64
	DocumentID string
	LabelID    int64
	LabelName  string
	LabelColor string
	Start      int
	End        int
	Text       string
	CreatedAt  time.Time
}

// CreateAnnotationRequest labels the range [Start, End) of a document.
type CreateAnnotationRequest struct {
	DocumentID string
	LabelID    int64
	Start      int
	End        int
}

// AnnotationService manages annotations. The annotated text is captured
// from the document at creation time and never rewritten.
type AnnotationService interface {
	Create(ctx context.Context, req CreateAnnotationRequest) (Annotation, error)
	Get(ctx context.Context, id int64) (Annotation, error)
	// List returns annotations, filtered to one document when documentID is set.
	List(ctx context.Context, documentID string) ([]Annotation, error)
	UpdateLabel(ctx context.Context, id, labelID int64) (Annotation, error)
	Delete(ctx context.Context, id int64) error
}

type annotationService struct {
	annotations storage.AnnotationStore
	documents   storage.DocumentStore
	labels      storage.LabelStore
}

// NewAnnotationService creates a new AnnotationService.
func NewAnnotationService(annotations storage.AnnotationStore, documents storage.DocumentStore, labels storage.LabelStore) AnnotationService {
	return &annotationService{
		annotations: annotations,
		documents:   documents,
		labels:      labels,
	}
}

func (s *annotationService) Create(ctx context.Context, req CreateAnnotationRequest) (Annotation, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.DocumentID == "" {
		return Annotation{}, &ValidationError{Field: "document", Message: "is required"}
	}

	doc, err := s.documents.GetByID(ctx, req.DocumentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Annotation{}, &ValidationError{Field: "document", Message: "does not exist"}
		}
		return Annotation{}, WrapError(err, "failed to get document")
	}
	label, err := s.labels.GetByID(ctx, req.LabelID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Annotation{}, &ValidationError{Field: "label", Message: "does not exist"}
		}
		return Annotation{}, WrapError(err, "failed to get label")
	}

	text, err := chunker.Extract(doc.Content, req.Start, req.End)
	if err != nil {
		logger.DebugContext(ctx, "annotation range rejected", "document_id", doc.ID, "start", req.Start, "end", req.End, "error", err)
		return Annotation{}, &ValidationError{Field: "range", Message: err.Error()}
	}
	if utf8.RuneCountInString(text) > maxAnnotationRunes {
		return Annotation{}, &ValidationError{Field: "range", Message: "annotated text must be at most 500 characters"}
	}

	rec := &storage.AnnotationRecord{
		DocumentID: doc.ID,
		LabelID:    label.ID,
		Start:      req.Start,
		End:        req.End,
		Text:       text,
		LabelName:  label.Name,
		LabelColor: label.Color,
	}
	if err := s.annotations.Create(ctx, rec); err != nil {
		return Annotation{}, storeError(err, "failed to create annotation")
	}

	logger.InfoContext(ctx, "annotation created", "annotation_id", rec.ID, "document_id", doc.ID, "label_id", label.ID)
	return annotationFromRecord(rec), nil
}

func (s *annotationService) Get(ctx context.Context, id int64) (Annotation, error) {
	rec, err := s.annotations.GetByID(ctx, id)
	if err != nil {
		return Annotation{}, storeError(err, "failed to get annotation")
	}
	return annotationFromRecord(rec), nil
}

func (s *annotationService) List(ctx context.Context, documentID string) ([]Annotation, error) {
	recs, err := s.annotations.List(ctx, documentID)
	if err != nil {
		return nil, WrapError(err, "failed to list annotations")
	}
	out := make([]Annotation, len(recs))
	for i := range recs {
		out[i] = annotationFromRecord(&recs[i])
	}
	return out, nil
}

func (s *annotationService) UpdateLabel(ctx context.Context, id, labelID int64) (Annotation, error) {
	if _, err := s.labels.GetByID(ctx, labelID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Annotation{}, &ValidationError{Field: "label", Message: "does not exist"}
		}
		return Annotation{}, WrapError(err, "failed to get label")
	}
	if err := s.annotations.UpdateLabel(ctx, id, labelID); err != nil {
		return Annotation{}, storeError(err, "failed to update annotation")
	}
	return s.Get(ctx, id)
}

func (s *annotationService) Delete(ctx context.Context, id int64) error {
	if err := s.annotations.Delete(ctx, id); err != nil {
		return storeError(err, "failed to delete annotation")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "annotation deleted", "annotation_id", id)
	return nil
}

func annotationFromRecord(rec *storage.AnnotationRecord) Annotation {
	return Annotation{
		ID:         rec.ID,
		DocumentID: rec.DocumentID,
		LabelID:    rec.LabelID,
		LabelName:  rec.LabelName,
		LabelColor: rec.LabelColor,
		Start:      rec.Start,
		End:        rec.End,
		Text:       rec.Text,
		CreatedAt:  rec.CreatedAt,
	}
}
