package media

import (
	"net/http"

	mediaUC "publications-api/internal/usecase/media"
)

// Register registers all media-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *mediaUC.Service) {
	mux.Handle("GET    /medias", ListHandler{svc})
	mux.Handle("GET    /medias/", GetHandler{svc})

	mux.Handle("POST   /medias", CreateHandler{svc})
	mux.Handle("PUT    /medias/", UpdateHandler{svc})
	mux.Handle("DELETE /medias/", DeleteHandler{svc})
}
