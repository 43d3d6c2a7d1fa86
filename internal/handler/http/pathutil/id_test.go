package pathutil

import (
	"errors"
	"testing"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		prefix    string
		wantID    int64
		wantError error
	}{
		{name: "valid media ID", path: "/medias/123", prefix: "/medias/", wantID: 123},
		{name: "valid publication ID", path: "/publications/7", prefix: "/publications/", wantID: 7},
		{name: "not a number", path: "/posts/abc", prefix: "/posts/", wantError: ErrInvalidID},
		{name: "zero", path: "/posts/0", prefix: "/posts/", wantError: ErrInvalidID},
		{name: "negative", path: "/medias/-1", prefix: "/medias/", wantError: ErrInvalidID},
		{name: "empty", path: "/medias/", prefix: "/medias/", wantError: ErrInvalidID},
		{name: "nested path", path: "/medias/1/x", prefix: "/medias/", wantError: ErrInvalidID},
		{name: "overflow", path: "/medias/99999999999999999999", prefix: "/medias/", wantError: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractID(tt.path, tt.prefix)
			if !errors.Is(err, tt.wantError) {
				t.Fatalf("ExtractID() error = %v, want %v", err, tt.wantError)
			}
			if id != tt.wantID {
				t.Errorf("ExtractID() = %d, want %d", id, tt.wantID)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID("42"); err != nil || id != 42 {
		t.Fatalf("ParseID(42) = %d, %v", id, err)
	}
	if _, err := ParseID("4.2"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("want ErrInvalidID, got %v", err)
	}
}
