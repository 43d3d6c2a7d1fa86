package publication

import (
	"net/http"

	"publications-api/internal/handler/http/pathutil"
	"publications-api/internal/handler/http/respond"
	pubUC "publications-api/internal/usecase/publication"
)

type GetHandler struct{ Svc *pubUC.Service }

// ServeHTTP returns one publication.
// @Summary      Get publication
// @Tags         publications
// @Produce      json
// @Param        id path int true "Publication ID"
// @Success      200 {object} DTO
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      404 {string} string "Not found - publication not found"
// @Router       /publications/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/publications/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}
