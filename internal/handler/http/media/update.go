package media

import (
	"net/http"

	"publications-api/internal/handler/http/pathutil"
	"publications-api/internal/handler/http/request"
	"publications-api/internal/handler/http/respond"
	mediaUC "publications-api/internal/usecase/media"
)

type UpdateHandler struct{ Svc *mediaUC.Service }

// ServeHTTP replaces a media.
// @Summary      Update media
// @Description  Replaces title and username. The pair is checked against every media, the target included.
// @Tags         medias
// @Accept       json
// @Produce      json
// @Param        id path int true "Media ID"
// @Param        media body Request true "Media"
// @Success      200 {object} DTO
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - media not found"
// @Failure      409 {string} string "Conflict - media with this title and username exists"
// @Failure      500 {string} string "Internal server error"
// @Router       /medias/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/medias/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	var req Request
	if err := request.Bind(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}

	m, err := h.Svc.Update(r.Context(), mediaUC.UpdateInput{
		ID:       id,
		Title:    req.Title,
		Username: req.Username,
	})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(m))
}
