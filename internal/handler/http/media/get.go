package media

import (
	"net/http"

	"publications-api/internal/handler/http/pathutil"
	"publications-api/internal/handler/http/respond"
	mediaUC "publications-api/internal/usecase/media"
)

type GetHandler struct{ Svc *mediaUC.Service }

// ServeHTTP returns one media.
// @Summary      Get media
// @Description  Returns the media with the given ID
// @Tags         medias
// @Produce      json
// @Param        id path int true "Media ID"
// @Success      200 {object} DTO
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      404 {string} string "Not found - media not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /medias/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/medias/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	m, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(m))
}
