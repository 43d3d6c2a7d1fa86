// Package media provides HTTP handlers for the /medias endpoints.
package media

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"publications-api/internal/domain/entity"
)

// DTO represents the JSON structure for media data transfer.
type DTO struct {
	ID       int64  `json:"id" example:"1"`
	Title    string `json:"title" example:"Daily Planet"`
	Username string `json:"username" example:"dailyplanet"`
}

// Request is the body of POST /medias and PUT /medias/{id}.
type Request struct {
	Title    string `json:"title" example:"Daily Planet"`
	Username string `json:"username" example:"dailyplanet"`
}

func (r *Request) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Username = strings.TrimSpace(r.Username)
}

func (r *Request) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Username, validation.Required.Error("username is required")),
	)
}

func toDTO(m *entity.Media) DTO {
	return DTO{ID: m.ID, Title: m.Title, Username: m.Username}
}
