package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *HTTPHandler) HandleGetBlog(w http.ResponseWriter, r *http.Request) {
	blogId := mux.Vars(r)["id"]
	blog, err := h.Storage.GetBlog(r.Context(), blogId)
	if err != nil {
		handleError(w, "getting blog", err)
		return
	}
	writeJSON(w, http.StatusOK, blog)
}
