package publication

import (
	"net/http"

	"publications-api/internal/handler/http/pathutil"
	"publications-api/internal/handler/http/request"
	"publications-api/internal/handler/http/respond"
	pubUC "publications-api/internal/usecase/publication"
)

type UpdateHandler struct{ Svc *pubUC.Service }

// ServeHTTP reschedules a publication that is not yet published.
// @Summary      Update publication
// @Tags         publications
// @Accept       json
// @Produce      json
// @Param        id path int true "Publication ID"
// @Param        publication body Request true "Publication"
// @Success      200 {object} DTO
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      403 {string} string "Forbidden - publication already published"
// @Failure      404 {string} string "Not found - publication, media or post not found"
// @Router       /publications/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/publications/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	var req Request
	if err := request.Bind(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}
	p, err := h.Svc.Update(r.Context(), pubUC.UpdateInput{
		ID:      id,
		MediaID: req.MediaID,
		PostID:  req.PostID,
		Date:    req.date(),
	})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}
