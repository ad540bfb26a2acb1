package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_label_service.go -package=mocks textmark/internal/service LabelService

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"textmark/internal/contextutil"
	"textmark/internal/storage"
)

const (
	maxLabelNameRunes = 100
	// DefaultLabelColor is used when a label is created without a color.
	DefaultLabelColor = "#ffff00"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Label is a named, colored tag for annotations.
type Label struct {
	ID    int64
	Name  string
	Color string
}

// LabelRequest creates or replaces a label.
type LabelRequest struct {
	Name  string
	Color string
}

// LabelService manages annotation labels.
type LabelService interface {
	Create(ctx context.Context, req LabelRequest) (Label, error)
	Get(ctx context.Context, id int64) (Label, error)
	List(ctx context.Context) ([]Label, error)
	Update(ctx context.Context, id int64, req LabelRequest) (Label, error)
	// Delete removes a label. Returns ErrConflict while annotations use it.
	Delete(ctx context.Context, id int64) error
}

type labelService struct {
	store storage.LabelStore
}

// NewLabelService creates a new LabelService.
func NewLabelService(store storage.LabelStore) LabelService {
	return &labelService{store: store}
}

func (s *labelService) Create(ctx context.Context, req LabelRequest) (Label, error) {
	rec, err := validateLabel(req)
	if err != nil {
		return Label{}, err
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return Label{}, storeError(err, "failed to create label")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "label created", "label_id", rec.ID, "name", rec.Name)
	return labelFromRecord(rec), nil
}

func (s *labelService) Get(ctx context.Context, id int64) (Label, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return Label{}, storeError(err, "failed to get label")
	}
	return labelFromRecord(rec), nil
}

func (s *labelService) List(ctx context.Context) ([]Label, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list labels")
	}
	labels := make([]Label, len(recs))
	for i := range recs {
		labels[i] = labelFromRecord(&recs[i])
	}
	return labels, nil
}

func (s *labelService) Update(ctx context.Context, id int64, req LabelRequest) (Label, error) {
	rec, err := validateLabel(req)
	if err != nil {
		return Label{}, err
	}
	rec.ID = id
	if err := s.store.Update(ctx, rec); err != nil {
		return Label{}, storeError(err, "failed to update label")
	}
	return labelFromRecord(rec), nil
}

func (s *labelService) Delete(ctx context.Context, id int64) error {
	logger := contextutil.LoggerFromContext(ctx)
	if err := s.store.Delete(ctx, id); err != nil {
		logger.WarnContext(ctx, "label delete refused", "label_id", id, "error", err)
		return storeError(err, "failed to delete label")
	}
	logger.InfoContext(ctx, "label deleted", "label_id", id)
	return nil
}

func validateLabel(req LabelRequest) (*storage.LabelRecord, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "cannot be blank"}
	}
	if utf8.RuneCountInString(name) > maxLabelNameRunes {
		return nil, &ValidationError{Field: "name", Message: "must be at most 100 characters"}
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = DefaultLabelColor
	}
	if !colorPattern.MatchString(color) {
		return nil, &ValidationError{Field: "color", Message: "must be a hex color like #ffff00"}
	}

	return &storage.LabelRecord{Name: name, Color: strings.ToLower(color)}, nil
}

func labelFromRecord(rec *storage.LabelRecord) Label {
	return Label{ID: rec.ID, Name: rec.Name, Color: rec.Color}
}
