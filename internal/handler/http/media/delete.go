package media

import (
	"net/http"

	"publications-api/internal/handler/http/pathutil"
	"publications-api/internal/handler/http/respond"
	mediaUC "publications-api/internal/usecase/media"
)

type DeleteHandler struct{ Svc *mediaUC.Service }

// ServeHTTP deletes a media.
// @Summary      Delete media
// @Description  Deletes a media that no publication references
// @Tags         medias
// @Param        id path int true "Media ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      403 {string} string "Forbidden - media is referenced by publications"
// @Failure      404 {string} string "Not found - media not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /medias/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/medias/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	if _, err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.DomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
