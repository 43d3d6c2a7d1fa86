package post

import (
	"net/http"

	"publications-api/internal/handler/http/pathutil"
	"publications-api/internal/handler/http/request"
	"publications-api/internal/handler/http/respond"
	postUC "publications-api/internal/usecase/post"
)

type ListHandler struct{ Svc *postUC.Service }

// ServeHTTP lists posts.
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200 {array} DTO
// @Failure      500 {string} string "Internal server error"
// @Router       /posts [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
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

type GetHandler struct{ Svc *postUC.Service }

// ServeHTTP returns one post.
// @Summary      Get post
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {object} DTO
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      404 {string} string "Not found - post not found"
// @Router       /posts/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/posts/")
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

type CreateHandler struct{ Svc *postUC.Service }

// ServeHTTP creates a post.
// @Summary      Create post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post body Request true "Post"
// @Success      201 {object} DTO
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      500 {string} string "Internal server error"
// @Router       /posts [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := request.Bind(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}
	p, err := h.Svc.Create(r.Context(), postUC.CreateInput{
		Title: req.Title,
		Text:  req.Text,
		Image: req.Image,
	})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(p))
}

type UpdateHandler struct{ Svc *postUC.Service }

// ServeHTTP replaces a post.
// @Summary      Update post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        post body Request true "Post"
// @Success      200 {object} DTO
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - post not found"
// @Router       /posts/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/posts/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	var req Request
	if err := request.Bind(r, &req); err != nil {
		respond.DomainError(w, r, err)
		return
	}
	p, err := h.Svc.Update(r.Context(), postUC.UpdateInput{
		ID:    id,
		Title: req.Title,
		Text:  req.Text,
		Image: req.Image,
	})
	if err != nil {
		respond.DomainError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}

type DeleteHandler struct{ Svc *postUC.Service }

// ServeHTTP deletes a post.
// @Summary      Delete post
// @Tags         posts
// @Param        id path int true "Post ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      403 {string} string "Forbidden - post is referenced by publications"
// @Failure      404 {string} string "Not found - post not found"
// @Router       /posts/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/posts/")
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
