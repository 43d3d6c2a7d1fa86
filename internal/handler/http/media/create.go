package media

import (
	"net/http"

	"publications-api/internal/handler/http/request"
	"publications-api/internal/handler/http/respond"
	mediaUC "publications-api/internal/usecase/media"
)

type CreateHandler struct{ Svc *mediaUC.Service }

// ServeHTTP creates a media.
// @Summary      Create media
// @Description  Creates a media outlet. The (title, username) pair must be unique.
// @Tags         medias
// @Accept       json
// @Produce      json
// @Param        media body Request true "Media"
// @Success      201 {object} DTO
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      409 {string} string "Conflict - media with this title and username exists"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "Internal server error"
// @Router       /medias [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := request.Bind(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}

	m, err := h.Svc.Create(r.Context(), mediaUC.CreateInput{
		Title:    req.Title,
		Username: req.Username,
	})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(m))
}
