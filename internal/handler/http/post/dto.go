// Package post provides HTTP handlers for the /posts endpoints.
package post

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"publications-api/internal/domain/entity"
)

// DTO represents the JSON structure for post data transfer.
// Image is null when the post has none.
type DTO struct {
	ID    int64   `json:"id" example:"1"`
	Title string  `json:"title" example:"Launch day"`
	Text  string  `json:"text" example:"We are live."`
	Image *string `json:"image" example:"https://cdn.example.com/launch.png"`
}

// Request is the body of POST /posts and PUT /posts/{id}.
type Request struct {
	Title string  `json:"title" example:"Launch day"`
	Text  string  `json:"text" example:"We are live."`
	Image *string `json:"image,omitempty" example:"https://cdn.example.com/launch.png"`
}

func (r *Request) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Text = strings.TrimSpace(r.Text)
	if r.Image != nil {
		trimmed := strings.TrimSpace(*r.Image)
		r.Image = &trimmed
	}
}

func (r *Request) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Text, validation.Required.Error("text is required")),
		validation.Field(&r.Image,
			validation.When(r.Image != nil,
				validation.Required.Error("image must not be empty"),
				is.URL.Error("image must be a valid URL"),
			),
		),
	)
}

func toDTO(p *entity.Post) DTO {
	return DTO{ID: p.ID, Title: p.Title, Text: p.Text, Image: p.Image}
}
