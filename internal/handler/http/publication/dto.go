// Package publication provides HTTP handlers for the /publications endpoints.
package publication

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"publications-api/internal/domain/entity"
	"publications-api/internal/handler/http/request"
)

// DTO represents the JSON structure for publication data transfer.
type DTO struct {
	ID      int64     `json:"id" example:"1"`
	MediaID int64     `json:"mediaId" example:"1"`
	PostID  int64     `json:"postId" example:"1"`
	Date    time.Time `json:"date" example:"2025-10-26T10:00:00Z"`
}

// Request is the body of POST /publications and PUT /publications/{id}.
type Request struct {
	MediaID int64  `json:"mediaId" example:"1"`
	PostID  int64  `json:"postId" example:"1"`
	Date    string `json:"date" example:"2025-10-26T10:00:00Z"`
}

func (r *Request) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MediaID,
			validation.Required.Error("mediaId is required"),
			validation.Min(int64(1)).Error("mediaId must be a positive integer")),
		validation.Field(&r.PostID,
			validation.Required.Error("postId is required"),
			validation.Min(int64(1)).Error("postId must be a positive integer")),
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			request.IsTimestamp),
	)
}

// date returns the validated date; call only after Validate succeeded.
func (r *Request) date() time.Time {
	t, _ := request.ParseTimestamp(r.Date)
	return t
}

func toDTO(p *entity.Publication) DTO {
	return DTO{ID: p.ID, MediaID: p.MediaID, PostID: p.PostID, Date: p.Date.UTC()}
}
