package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/medias/\d+$`), Template: "/medias/:id"},
	{Pattern: regexp.MustCompile(`^/posts/\d+$`), Template: "/posts/:id"},
	{Pattern: regexp.MustCompile(`^/publications/\d+$`), Template: "/publications/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /medias/123) to template format (e.g., /medias/:id).
//
// Examples:
//
//	NormalizePath("/medias/123")          // "/medias/:id"
//	NormalizePath("/publications/9")      // "/publications/:id"
//	NormalizePath("/health")              // "/health" (unchanged)
//	NormalizePath("/unknown/path/123")    // "/unknown/path/123" (no match, return original)
//
// Query parameters and trailing slashes are stripped:
//
//	NormalizePath("/posts/123?x=1")       // "/posts/:id"
//	NormalizePath("/posts/123/")          // "/posts/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
