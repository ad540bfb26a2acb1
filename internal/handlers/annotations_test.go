package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"textmark/internal/service"
	"textmark/internal/service/mocks"
)

func TestAnnotationHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.MockAnnotationService)
		wantStatus int
		wantText   string
	}{
		{
			name: "created",
			body: `{"document":"d1","label":2,"start":6,"end":11}`,
			mockSetup: func(m *mocks.MockAnnotationService) {
				m.EXPECT().
					Create(gomock.Any(), service.CreateAnnotationRequest{DocumentID: "d1", LabelID: 2, Start: 6, End: 11}).
					Return(service.Annotation{ID: 1, DocumentID: "d1", LabelID: 2, Start: 6, End: 11, Text: "world"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantText:   "world",
		},
		{
			name: "zero length range",
			body: `{"document":"d1","label":2,"start":0,"end":0}`,
			mockSetup: func(m *mocks.MockAnnotationService) {
				m.EXPECT().
					Create(gomock.Any(), service.CreateAnnotationRequest{DocumentID: "d1", LabelID: 2, Start: 0, End: 0}).
					Return(service.Annotation{ID: 2, DocumentID: "d1", LabelID: 2}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing end",
			body:       `{"document":"d1","label":2,"start":6}`,
			mockSetup:  func(m *mocks.MockAnnotationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "client supplied text rejected",
			body:       `{"document":"d1","label":2,"start":0,"end":1,"text":"forged"}`,
			mockSetup:  func(m *mocks.MockAnnotationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "range out of bounds",
			body: `{"document":"d1","label":2,"start":5,"end":999}`,
			mockSetup: func(m *mocks.MockAnnotationService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(service.Annotation{}, &service.ValidationError{Field: "range", Message: "range out of bounds"})
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockAnnotationService(ctrl)
			tt.mockSetup(svc)
			handler := NewAnnotationHandler(svc)

			w := httptest.NewRecorder()
			handler.Create(w, httptest.NewRequest(http.MethodPost, "/api/v1/annotations", strings.NewReader(tt.body)))

			if w.Code != tt.wantStatus {
				t.Fatalf("Create() status = %v, want %v (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantText == "" {
				return
			}
			var resp AnnotationResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Text != tt.wantText {
				t.Errorf("Create() text = %q, want %q", resp.Text, tt.wantText)
			}
		})
	}
}

func TestAnnotationHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockAnnotationService(ctrl)
	svc.EXPECT().List(gomock.Any(), "d1").Return([]service.Annotation{{ID: 1, DocumentID: "d1"}}, nil)
	svc.EXPECT().List(gomock.Any(), "").Return([]service.Annotation{}, nil)
	handler := NewAnnotationHandler(svc)

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/annotations?document=d1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("List() status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp []AnnotationResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Document != "d1" {
		t.Errorf("List() = %+v", resp)
	}

	w = httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/annotations", nil))
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("List() unfiltered body = %s, want []", w.Body.String())
	}
}

func TestAnnotationHandler_UpdateGetDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockAnnotationService(ctrl)
	handler := NewAnnotationHandler(svc)

	svc.EXPECT().UpdateLabel(gomock.Any(), int64(5), int64(3)).Return(service.Annotation{ID: 5, LabelID: 3, Text: "kept"}, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/annotations/5", strings.NewReader(`{"label":3}`))
	handler.Update(w, withURLParams(req, "id", "5"))
	if w.Code != http.StatusOK {
		t.Errorf("Update() status = %v, want %v (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/v1/annotations/5", strings.NewReader(`{"start":1}`))
	handler.Update(w, withURLParams(req, "id", "5"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Update(start) status = %v, want %v", w.Code, http.StatusBadRequest)
	}

	svc.EXPECT().Get(gomock.Any(), int64(5)).Return(service.Annotation{}, service.ErrNotFound)
	w = httptest.NewRecorder()
	handler.Get(w, withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/annotations/5", nil), "id", "5"))
	if w.Code != http.StatusNotFound {
		t.Errorf("Get(missing) status = %v, want %v", w.Code, http.StatusNotFound)
	}

	w = httptest.NewRecorder()
	handler.Delete(w, withURLParams(httptest.NewRequest(http.MethodDelete, "/api/v1/annotations/0", nil), "id", "0"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Delete(0) status = %v, want %v", w.Code, http.StatusBadRequest)
	}

	svc.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
	w = httptest.NewRecorder()
	handler.Delete(w, withURLParams(httptest.NewRequest(http.MethodDelete, "/api/v1/annotations/5", nil), "id", "5"))
	if w.Code != http.StatusNoContent {
		t.Errorf("Delete() status = %v, want %v", w.Code, http.StatusNoContent)
	}
}
