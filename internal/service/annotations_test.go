package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"textmark/internal/storage"
	"textmark/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

type annotationMocks struct {
	annotations *mocks.MockAnnotationStore
	documents   *mocks.MockDocumentStore
	labels      *mocks.MockLabelStore
}

func newAnnotationService(t *testing.T) (AnnotationService, annotationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := annotationMocks{
		annotations: mocks.NewMockAnnotationStore(ctrl),
		documents:   mocks.NewMockDocumentStore(ctrl),
		labels:      mocks.NewMockLabelStore(ctrl),
	}
	return NewAnnotationService(m.annotations, m.documents, m.labels), m
}

func TestAnnotationService_Create(t *testing.T) {
	const content = "Hello world.\n\nThis is a test."

	svc, m := newAnnotationService(t)
	m.documents.EXPECT().GetByID(gomock.Any(), "d1").Return(&storage.DocumentRecord{ID: "d1", Content: content}, nil)
	m.labels.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&storage.LabelRecord{ID: 2, Name: "Greeting", Color: "#ffff00"}, nil)
	m.annotations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *storage.AnnotationRecord) error {
		if rec.Text != "world" || rec.Start != 6 || rec.End != 11 {
			t.Errorf("stored annotation = %+v", rec)
		}
		rec.ID = 10
		return nil
	})

	got, err := svc.Create(context.Background(), CreateAnnotationRequest{DocumentID: "d1", LabelID: 2, Start: 6, End: 11})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != 10 || got.Text != "world" || got.LabelName != "Greeting" {
		t.Errorf("Create() = %+v", got)
	}
}

func TestAnnotationService_Create_Validation(t *testing.T) {
	long := strings.Repeat("a", 501)

	tests := []struct {
		name      string
		req       CreateAnnotationRequest
		content   string
		docErr    error
		labelErr  error
		wantField string
	}{
		{name: "no document id", req: CreateAnnotationRequest{LabelID: 1}, wantField: "document"},
		{name: "unknown document", req: CreateAnnotationRequest{DocumentID: "x", LabelID: 1}, docErr: storage.ErrNotFound, wantField: "document"},
		{name: "unknown label", req: CreateAnnotationRequest{DocumentID: "d1", LabelID: 9}, content: "abc", labelErr: storage.ErrNotFound, wantField: "label"},
		{name: "end before start", req: CreateAnnotationRequest{DocumentID: "d1", LabelID: 1, Start: 2, End: 1}, content: "abc", wantField: "range"},
		{name: "negative start", req: CreateAnnotationRequest{DocumentID: "d1", LabelID: 1, Start: -1, End: 1}, content: "abc", wantField: "range"},
		{name: "past end", req: CreateAnnotationRequest{DocumentID: "d1", LabelID: 1, Start: 0, End: 4}, content: "abc", wantField: "range"},
		{name: "text too long", req: CreateAnnotationRequest{DocumentID: "d1", LabelID: 1, Start: 0, End: 501}, content: long, wantField: "range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAnnotationService(t)

			if tt.req.DocumentID != "" {
				if tt.docErr != nil {
					m.documents.EXPECT().GetByID(gomock.Any(), tt.req.DocumentID).Return(nil, tt.docErr)
				} else {
					m.documents.EXPECT().GetByID(gomock.Any(), tt.req.DocumentID).
						Return(&storage.DocumentRecord{ID: tt.req.DocumentID, Content: tt.content}, nil)
					if tt.labelErr != nil {
						m.labels.EXPECT().GetByID(gomock.Any(), tt.req.LabelID).Return(nil, tt.labelErr)
					} else {
						m.labels.EXPECT().GetByID(gomock.Any(), tt.req.LabelID).
							Return(&storage.LabelRecord{ID: tt.req.LabelID, Name: "L", Color: "#ffff00"}, nil)
					}
				}
			}

			_, err := svc.Create(context.Background(), tt.req)
			var valErr *ValidationError
			if !errors.As(err, &valErr) || valErr.Field != tt.wantField {
				t.Errorf("Create() error = %v, want ValidationError on %s", err, tt.wantField)
			}
		})
	}
}

func TestAnnotationService_Create_ExactLimit(t *testing.T) {
	content := strings.Repeat("ü", 500)

	svc, m := newAnnotationService(t)
	m.documents.EXPECT().GetByID(gomock.Any(), "d1").Return(&storage.DocumentRecord{ID: "d1", Content: content}, nil)
	m.labels.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&storage.LabelRecord{ID: 1}, nil)
	m.annotations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), CreateAnnotationRequest{DocumentID: "d1", LabelID: 1, Start: 0, End: 500})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.Text != content {
		t.Error("Create() should capture the full 500 character range")
	}
}

func TestAnnotationService_UpdateLabel(t *testing.T) {
	svc, m := newAnnotationService(t)

	m.labels.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&storage.LabelRecord{ID: 3, Name: "New"}, nil)
	m.annotations.EXPECT().UpdateLabel(gomock.Any(), int64(5), int64(3)).Return(nil)
	m.annotations.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&storage.AnnotationRecord{
		ID: 5, LabelID: 3, LabelName: "New", Start: 0, End: 4, Text: "kept",
	}, nil)

	got, err := svc.UpdateLabel(context.Background(), 5, 3)
	if err != nil {
		t.Fatalf("UpdateLabel() error = %v", err)
	}
	if got.LabelID != 3 || got.Text != "kept" {
		t.Errorf("UpdateLabel() = %+v", got)
	}

	m.labels.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, storage.ErrNotFound)
	if _, err := svc.UpdateLabel(context.Background(), 5, 99); !isValidation(err) {
		t.Errorf("UpdateLabel(unknown label) error = %v, want ValidationError", err)
	}

	m.labels.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&storage.LabelRecord{ID: 3}, nil)
	m.annotations.EXPECT().UpdateLabel(gomock.Any(), int64(404), int64(3)).Return(storage.ErrNotFound)
	if _, err := svc.UpdateLabel(context.Background(), 404, 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateLabel(missing) error = %v, want ErrNotFound", err)
	}
}

func TestAnnotationService_ListGetDelete(t *testing.T) {
	svc, m := newAnnotationService(t)

	m.annotations.EXPECT().List(gomock.Any(), "d1").Return([]storage.AnnotationRecord{
		{ID: 1, DocumentID: "d1", Start: 0, End: 2},
		{ID: 2, DocumentID: "d1", Start: 3, End: 5},
	}, nil)
	list, err := svc.List(context.Background(), "d1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 || list[1].ID != 2 {
		t.Errorf("List() = %+v", list)
	}

	m.annotations.EXPECT().GetByID(gomock.Any(), int64(8)).Return(nil, storage.ErrNotFound)
	if _, err := svc.Get(context.Background(), 8); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	m.annotations.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
}
