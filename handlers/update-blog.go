package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"bloglist/storage/models"
)

// UpdateBlogRequestData carries the fields to overwrite; absent fields keep
// their stored value.
type UpdateBlogRequestData struct {
	Title  *string `json:"title" validate:"omitnil,min=1"`
	Author *string `json:"author"`
	Url    *string `json:"url" validate:"omitnil,min=1"`
	Likes  *int    `json:"likes" validate:"omitnil,gte=0"`
}

func (d *UpdateBlogRequestData) ToPatch() models.BlogPatch {
	return models.BlogPatch{
		Title:  d.Title,
		Author: d.Author,
		Url:    d.Url,
		Likes:  d.Likes,
	}
}

func (h *HTTPHandler) HandleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	blogId, err := h.Storage.NormalizeId(mux.Vars(r)["id"])
	if err != nil {
		handleError(w, "updating blog", err)
		return
	}
	var data UpdateBlogRequestData
	if err := decodeBody(r, &data); err != nil {
		handleError(w, "decoding blog update", err)
		return
	}
	if err := validateRequest(&data); err != nil {
		handleError(w, "validating blog update", err)
		return
	}

	blog, err := h.Storage.UpdateBlog(r.Context(), blogId, data.ToPatch())
	if err != nil {
		handleError(w, "updating blog", err)
		return
	}
	writeJSON(w, http.StatusOK, blog)
}
