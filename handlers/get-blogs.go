package handlers

import (
	"net/http"
)

func (h *HTTPHandler) HandleGetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Storage.GetBlogs(r.Context())
	if err != nil {
		handleError(w, "listing blogs", err)
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}
