package main

import (
	"context"

	"bloglist/storage"
	"bloglist/storage/models"
)

var initialBlogs = []models.Blog{
	{
		Title:  "React patterns",
		Author: "Michael Chan",
		Url:    "https://reactpatterns.com/",
		Likes:  7,
	},
	{
		Title:  "Go To Statement Considered Harmful",
		Author: "Edsger W. Dijkstra",
		Url:    "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
		Likes:  5,
	},
}

func seedBlogs(ctx context.Context, st storage.Storage) error {
	for _, blog := range initialBlogs {
		if _, err := st.AddBlog(ctx, blog); err != nil {
			return err
		}
	}
	return nil
}

func blogsInDb(ctx context.Context, st storage.Storage) ([]models.Blog, error) {
	return st.GetBlogs(ctx)
}

// nonExistingId returns an id that is well-formed for st but not stored.
func nonExistingId(ctx context.Context, st storage.Storage) (string, error) {
	blog, err := st.AddBlog(ctx, models.Blog{Title: "willremovethissoon", Url: "https://example.com"})
	if err != nil {
		return "", err
	}
	if err = st.DeleteBlog(ctx, blog.Id); err != nil {
		return "", err
	}
	return blog.Id, nil
}

func titles(blogs []models.Blog) []string {
	out := make([]string, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, b.Title)
	}
	return out
}
