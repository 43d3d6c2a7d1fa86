package publication

import (
	"net/http"

	"publications-api/internal/domain/entity"
	"publications-api/internal/handler/http/request"
	"publications-api/internal/handler/http/respond"
	pubUC "publications-api/internal/usecase/publication"
)

type ListHandler struct{ Svc *pubUC.Service }

// ServeHTTP lists publications, optionally filtered.
// @Summary      List publications
// @Description  published=true keeps publications whose date has passed; after keeps those dated strictly later than the given instant. Both filters combine.
// @Tags         publications
// @Produce      json
// @Param        published query string false "Only published when exactly \"true\""
// @Param        after query string false "ISO 8601 lower bound (exclusive)"
// @Success      200 {array} DTO
// @Failure      400 {string} string "Bad request - invalid after"
// @Failure      500 {string} string "Internal server error"
// @Router       /publications [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	in := pubUC.ListInput{Published: q.Get("published") == "true"}
	if raw := q.Get("after"); raw != "" {
		after, err := request.ParseTimestamp(raw)
		if err != nil {
			respond.DomainError(w, r, &entity.ValidationError{Field: "after", Message: err.Error()})
			return
		}
		in.After = &after
	}

	list, err := h.Svc.List(r.Context(), in)
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, p := range list {
		out = append(out, toDTO(p))
	}
	respond.JSON(w, http.StatusOK, out)
}
