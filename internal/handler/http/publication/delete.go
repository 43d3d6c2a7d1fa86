package publication

import (
	"net/http"

	"publications-api/internal/handler/http/pathutil"
	"publications-api/internal/handler/http/respond"
	pubUC "publications-api/internal/usecase/publication"
)

type DeleteHandler struct{ Svc *pubUC.Service }

// ServeHTTP deletes a publication in any state.
// @Summary      Delete publication
// @Tags         publications
// @Param        id path int true "Publication ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      404 {string} string "Not found - publication not found"
// @Router       /publications/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/publications/")
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
