package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *HTTPHandler) HandleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	blogId := mux.Vars(r)["id"]
	if err := h.Storage.DeleteBlog(r.Context(), blogId); err != nil {
		handleError(w, "deleting blog", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
