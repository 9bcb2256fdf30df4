package in_memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"bloglist/storage"
	"bloglist/storage/models"
)

type InMemoryStorage struct {
	mut     sync.RWMutex
	blogs   map[string]models.Blog
	blogIds []string
}

func parseId(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("malformed blog id %q: %w", id, storage.InvalidIdError)
	}
	return parsed.String(), nil
}

func (s *InMemoryStorage) NormalizeId(blogId string) (string, error) {
	return parseId(blogId)
}

func (s *InMemoryStorage) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	blogs := make([]models.Blog, 0, len(s.blogIds))
	for _, id := range s.blogIds {
		blogs = append(blogs, s.blogs[id])
	}
	return blogs, nil
}

func (s *InMemoryStorage) GetBlog(ctx context.Context, blogId string) (*models.Blog, error) {
	id, err := parseId(blogId)
	if err != nil {
		return nil, err
	}

	s.mut.RLock()
	defer s.mut.RUnlock()

	blog, found := s.blogs[id]
	if !found {
		return nil, fmt.Errorf("no blog with id %s: %w", id, storage.NotFoundError)
	}
	return &blog, nil
}

func (s *InMemoryStorage) AddBlog(ctx context.Context, blog models.Blog) (*models.Blog, error) {
	blog.Id = uuid.New().String()

	s.mut.Lock()
	defer s.mut.Unlock()

	s.blogs[blog.Id] = blog
	s.blogIds = append(s.blogIds, blog.Id)
	return &blog, nil
}

func (s *InMemoryStorage) UpdateBlog(ctx context.Context, blogId string, patch models.BlogPatch) (*models.Blog, error) {
	id, err := parseId(blogId)
	if err != nil {
		return nil, err
	}

	s.mut.Lock()
	defer s.mut.Unlock()

	blog, found := s.blogs[id]
	if !found {
		return nil, fmt.Errorf("no blog with id %s: %w", id, storage.NotFoundError)
	}
	blog.Apply(patch)
	s.blogs[id] = blog
	return &blog, nil
}

func (s *InMemoryStorage) DeleteBlog(ctx context.Context, blogId string) error {
	id, err := parseId(blogId)
	if err != nil {
		return err
	}

	s.mut.Lock()
	defer s.mut.Unlock()

	if _, found := s.blogs[id]; !found {
		return nil
	}
	delete(s.blogs, id)
	for i, existing := range s.blogIds {
		if existing == id {
			s.blogIds = append(s.blogIds[:i], s.blogIds[i+1:]...)
			break
		}
	}
	return nil
}

func CreateInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		blogs:   make(map[string]models.Blog),
		blogIds: make([]string, 0),
	}
}
