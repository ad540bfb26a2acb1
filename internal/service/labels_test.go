package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"textmark/internal/storage"
	"textmark/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func TestLabelService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       LabelRequest
		wantColor string
		wantField string
	}{
		{name: "default color", req: LabelRequest{Name: "Person"}, wantColor: DefaultLabelColor},
		{name: "explicit color lowercased", req: LabelRequest{Name: "Place", Color: "#00FF7F"}, wantColor: "#00ff7f"},
		{name: "name trimmed", req: LabelRequest{Name: "  Org  ", Color: "#123456"}, wantColor: "#123456"},
		{name: "blank name", req: LabelRequest{Name: "   "}, wantField: "name"},
		{name: "long name", req: LabelRequest{Name: strings.Repeat("n", 101)}, wantField: "name"},
		{name: "short hex", req: LabelRequest{Name: "x", Color: "#fff"}, wantField: "color"},
		{name: "named color", req: LabelRequest{Name: "x", Color: "yellow"}, wantField: "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockLabelStore(ctrl)
			svc := NewLabelService(store)

			if tt.wantField == "" {
				store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *storage.LabelRecord) error {
					rec.ID = 7
					return nil
				})
			}

			got, err := svc.Create(context.Background(), tt.req)
			if tt.wantField != "" {
				var valErr *ValidationError
				if !errors.As(err, &valErr) || valErr.Field != tt.wantField {
					t.Fatalf("Create() error = %v, want ValidationError on %s", err, tt.wantField)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if got.ID != 7 || got.Color != tt.wantColor || got.Name != strings.TrimSpace(tt.req.Name) {
				t.Errorf("Create() = %+v", got)
			}
		})
	}
}

func TestLabelService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockLabelStore(ctrl)
	svc := NewLabelService(store)

	store.EXPECT().Update(gomock.Any(), &storage.LabelRecord{ID: 3, Name: "Renamed", Color: "#abcdef"}).Return(nil)
	got, err := svc.Update(context.Background(), 3, LabelRequest{Name: "Renamed", Color: "#ABCDEF"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.ID != 3 {
		t.Errorf("Update() ID = %d, want 3", got.ID)
	}

	store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)
	if _, err := svc.Update(context.Background(), 99, LabelRequest{Name: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLabelService_GetAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockLabelStore(ctrl)
	svc := NewLabelService(store)

	store.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&storage.LabelRecord{ID: 1, Name: "A", Color: "#000000"}, nil)
	label, err := svc.Get(context.Background(), 1)
	if err != nil || label.Name != "A" {
		t.Errorf("Get() = %+v, %v", label, err)
	}

	store.EXPECT().List(gomock.Any()).Return([]storage.LabelRecord{}, nil)
	labels, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if labels == nil || len(labels) != 0 {
		t.Errorf("List() = %v, want empty non-nil slice", labels)
	}
}

func TestLabelService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{name: "deleted", storeErr: nil, wantErr: nil},
		{name: "missing", storeErr: storage.ErrNotFound, wantErr: ErrNotFound},
		{name: "in use", storeErr: fmt.Errorf("label 1 is in use: %w", storage.ErrConstraint), wantErr: ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockLabelStore(ctrl)
			store.EXPECT().Delete(gomock.Any(), int64(1)).Return(tt.storeErr)

			err := NewLabelService(store).Delete(context.Background(), 1)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Delete() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Delete() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
