package media

import (
	"net/http"

	"publications-api/internal/handler/http/respond"
	mediaUC "publications-api/internal/usecase/media"
)

type ListHandler struct{ Svc *mediaUC.Service }

// ServeHTTP lists media.
// @Summary      List media
// @Description  Returns every media outlet
// @Tags         medias
// @Produce      json
// @Success      200 {array} DTO
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "Internal server error"
// @Router       /medias [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, m := range list {
		out = append(out, toDTO(m))
	}
	respond.JSON(w, http.StatusOK, out)
}
