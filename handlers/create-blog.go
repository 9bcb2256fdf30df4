package handlers

import (
	"net/http"

	"bloglist/storage/models"
)

type CreateBlogRequestData struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	Url    string `json:"url" validate:"required"`
	Likes  *int   `json:"likes" validate:"omitnil,gte=0"`
}

func (d *CreateBlogRequestData) ToModel() models.Blog {
	blog := models.Blog{
		Title:  d.Title,
		Author: d.Author,
		Url:    d.Url,
	}
	if d.Likes != nil {
		blog.Likes = *d.Likes
	}
	return blog
}

func (h *HTTPHandler) HandleCreateBlog(w http.ResponseWriter, r *http.Request) {
	var data CreateBlogRequestData
	if err := decodeBody(r, &data); err != nil {
		handleError(w, "decoding new blog", err)
		return
	}
	if err := validateRequest(&data); err != nil {
		handleError(w, "validating new blog", err)
		return
	}

	blog, err := h.Storage.AddBlog(r.Context(), data.ToModel())
	if err != nil {
		handleError(w, "adding blog", err)
		return
	}
	writeJSON(w, http.StatusCreated, blog)
}
