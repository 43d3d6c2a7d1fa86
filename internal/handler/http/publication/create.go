package publication

import (
	"net/http"

	"publications-api/internal/handler/http/request"
	"publications-api/internal/handler/http/respond"
	pubUC "publications-api/internal/usecase/publication"
)

type CreateHandler struct{ Svc *pubUC.Service }

// ServeHTTP schedules a publication.
// @Summary      Create publication
// @Description  Links an existing media to an existing post at a date
// @Tags         publications
// @Accept       json
// @Produce      json
// @Param        publication body Request true "Publication"
// @Success      201 {object} DTO
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - media or post not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /publications [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := request.Bind(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}
	p, err := h.Svc.Create(r.Context(), pubUC.CreateInput{
		MediaID: req.MediaID,
		PostID:  req.PostID,
		Date:    req.date(),
	})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(p))
}
