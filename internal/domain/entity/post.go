package entity

import "errors"

// Post represents a piece of content that can be scheduled on a Media.
// Image is optional and holds an absolute http(s) URL when set.
type Post struct {
	ID    int64
	Title string
	Text  string
	Image *string
}

// Validate checks the optional image URL.
func (p *Post) Validate() error {
	if p.Image == nil {
		return nil
	}
	if err := ValidateURL(*p.Image); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return &ValidationError{Field: "image", Message: vErr.Message}
		}
		return &ValidationError{Field: "image", Message: "must be a valid URL"}
	}
	return nil
}
