package respond

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"publications-api/internal/domain/entity"
	"publications-api/internal/observability/logging"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{name: "map", code: http.StatusOK, data: map[string]string{"message": "ok"}, expectedBody: `{"message":"ok"}`},
		{name: "struct", code: http.StatusCreated, data: struct {
			ID int64 `json:"id"`
		}{ID: 3}, expectedBody: `{"id":3}`},
		{name: "empty slice", code: http.StatusOK, data: []int{}, expectedBody: `[]`},
		{name: "nil", code: http.StatusNoContent, data: nil, expectedBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			if w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.expectedBody {
				t.Errorf("body = %q, want %q", got, tt.expectedBody)
			}
		})
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusBadRequest, errors.New("title: cannot be blank"))

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "title: cannot be blank" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &entity.ValidationError{Field: "image", Message: "must be a valid URL"}, http.StatusBadRequest},
		{"not found", fmt.Errorf("media %w", entity.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("media %w", entity.ErrConflict), http.StatusConflict},
		{"forbidden", fmt.Errorf("%w: in use", entity.ErrForbidden), http.StatusForbidden},
		{"wrapped twice", fmt.Errorf("handler: %w", fmt.Errorf("post %w", entity.ErrNotFound)), http.StatusNotFound},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDomainError_ClassifiedKeepsMessage(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/medias/1", nil)

	DomainError(w, r, fmt.Errorf("%w: media is referenced by publications", entity.ErrForbidden))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if !strings.Contains(w.Body.String(), "referenced by publications") {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestDomainError_InternalIsHiddenAndLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := logging.WithLogger(context.Background(), logger)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/posts", nil).WithContext(ctx)

	DomainError(w, r, errors.New("dial postgres://app:s3cr3t@db/pubs: refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != `{"error":"internal server error"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
	if strings.Contains(buf.String(), "s3cr3t") {
		t.Error("password leaked into logs")
	}
	if !strings.Contains(buf.String(), "/posts") {
		t.Error("request path missing from log entry")
	}
}

func TestDomainError_Nil(t *testing.T) {
	w := httptest.NewRecorder()
	DomainError(w, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	if w.Body.Len() != 0 {
		t.Errorf("nil error must not write a body")
	}
}
