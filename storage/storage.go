package storage

import (
	"context"
	"errors"
	"fmt"

	"bloglist/storage/models"
)

var (
	InternalError  = errors.New("storage internal error")
	ClientError    = errors.New("storage client error")
	InvalidIdError = fmt.Errorf("%w.invalid_id", ClientError)
	NotFoundError  = fmt.Errorf("%w.not_found", ClientError)
)

type Storage interface {
	// NormalizeId returns the canonical spelling of id, or InvalidIdError.
	NormalizeId(id string) (string, error)
	GetBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlog(ctx context.Context, id string) (*models.Blog, error)
	AddBlog(ctx context.Context, blog models.Blog) (*models.Blog, error)
	// UpdateBlog sets the non-nil fields of patch and returns the stored result.
	UpdateBlog(ctx context.Context, id string, patch models.BlogPatch) (*models.Blog, error)
	// DeleteBlog is a no-op for ids that are well-formed but absent.
	DeleteBlog(ctx context.Context, id string) error
}
