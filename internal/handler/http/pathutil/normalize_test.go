package pathutil

import (
	"strconv"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/medias/123", "/medias/:id"},
		{"/posts/1", "/posts/:id"},
		{"/publications/99999", "/publications/:id"},
		{"/medias", "/medias"},
		{"/publications", "/publications"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/", "/"},
		{"/medias/abc", "/medias/abc"},
		{"/unknown/path/123", "/unknown/path/123"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizePath_TrailingSlashAndQuery(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/posts/123/", "/posts/:id"},
		{"/posts/123?x=1", "/posts/:id"},
		{"/publications?published=true", "/publications"},
		{"/medias/", "/medias"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.path); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNormalizePath_Cardinality(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 1; i <= 500; i++ {
		for _, prefix := range []string{"/medias/", "/posts/", "/publications/"} {
			seen[NormalizePath(prefix+strconv.Itoa(i))] = struct{}{}
		}
	}
	if len(seen) != 3 {
		t.Fatalf("want 3 distinct labels, got %d", len(seen))
	}
}
