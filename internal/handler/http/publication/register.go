package publication

import (
	"net/http"

	pubUC "publications-api/internal/usecase/publication"
)

// Register registers all publication-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *pubUC.Service) {
	mux.Handle("GET    /publications", ListHandler{svc})
	mux.Handle("GET    /publications/", GetHandler{svc})

	mux.Handle("POST   /publications", CreateHandler{svc})
	mux.Handle("PUT    /publications/", UpdateHandler{svc})
	mux.Handle("DELETE /publications/", DeleteHandler{svc})
}
