package post

import (
	"net/http"

	postUC "publications-api/internal/usecase/post"
)

// Register registers all post-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *postUC.Service) {
	mux.Handle("GET    /posts", ListHandler{svc})
	mux.Handle("GET    /posts/", GetHandler{svc})

	mux.Handle("POST   /posts", CreateHandler{svc})
	mux.Handle("PUT    /posts/", UpdateHandler{svc})
	mux.Handle("DELETE /posts/", DeleteHandler{svc})
}
