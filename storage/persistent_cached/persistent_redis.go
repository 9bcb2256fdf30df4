package persistent_cached

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"bloglist/storage"
	"bloglist/storage/models"
)

const (
	// generationKey is bumped after every write. Cached entries are keyed by
	// the generation they were read under, so a fill that races a write lands
	// under a generation nobody reads any more.
	generationKey = "blogs:generation"
	cacheTTL      = time.Hour
)

func blogListKey(generation int64) string {
	return "blogs:" + strconv.FormatInt(generation, 10)
}

func blogKey(generation int64, blogId string) string {
	return "blog:" + strconv.FormatInt(generation, 10) + ":" + blogId
}

func saveToCache(ctx context.Context, client *redis.Client, key string, value interface{}) {
	j, err := json.Marshal(value)
	if err != nil {
		log.Printf("Failed to encode %s for redis: %s", key, err.Error())
		return
	}
	if err = client.Set(ctx, key, j, cacheTTL).Err(); err != nil {
		log.Printf("Failed to save %s to redis: %s", key, err.Error())
	}
}

func getFromCache(ctx context.Context, client *redis.Client, key string, dest interface{}) bool {
	val, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to get %s from redis: %s", key, err.Error())
		}
		return false
	}
	if err = json.Unmarshal(val, dest); err != nil {
		log.Printf("Failed to decode %s from redis: %s", key, err.Error())
		return false
	}
	return true
}

// currentGeneration reports false when redis cannot be read; callers then
// bypass the cache entirely.
func currentGeneration(ctx context.Context, client *redis.Client) (int64, bool) {
	generation, err := client.Get(ctx, generationKey).Int64()
	if err == redis.Nil {
		return 0, true
	}
	if err != nil {
		log.Printf("Failed to get %s from redis: %s", generationKey, err.Error())
		return 0, false
	}
	return generation, true
}

func bumpGeneration(ctx context.Context, client *redis.Client) {
	if err := client.Incr(ctx, generationKey).Err(); err != nil {
		log.Printf("Failed to bump %s in redis: %s", generationKey, err.Error())
	}
}

// newRedisClient accepts either a redis:// URL or a bare host:port address.
func newRedisClient(redisUrl string) (*redis.Client, error) {
	if !strings.Contains(redisUrl, "://") {
		return redis.NewClient(&redis.Options{Addr: redisUrl}), nil
	}
	opts, err := redis.ParseURL(redisUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url %q: %w", redisUrl, err)
	}
	return redis.NewClient(opts), nil
}

func CreatePersistentStorageCachedWithRedis(persistentStorage storage.Storage, redisUrl string) (*PersistentStorageWithCache, error) {
	redisClient, err := newRedisClient(redisUrl)
	if err != nil {
		return nil, err
	}
	if err = redisClient.Ping(context.Background()).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &PersistentStorageWithCache{
		client:            redisClient,
		persistentStorage: persistentStorage,
	}, nil
}

// PersistentStorageWithCache is a read-through cache in front of another
// Storage. Writes go to the underlying storage first and then invalidate
// every cached entry by bumping the generation.
type PersistentStorageWithCache struct {
	client            *redis.Client
	persistentStorage storage.Storage
}

func (s *PersistentStorageWithCache) NormalizeId(blogId string) (string, error) {
	return s.persistentStorage.NormalizeId(blogId)
}

func (s *PersistentStorageWithCache) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	generation, ok := currentGeneration(ctx, s.client)
	if !ok {
		return s.persistentStorage.GetBlogs(ctx)
	}
	var cached []models.Blog
	if getFromCache(ctx, s.client, blogListKey(generation), &cached) {
		return cached, nil
	}
	blogs, err := s.persistentStorage.GetBlogs(ctx)
	if err == nil {
		saveToCache(ctx, s.client, blogListKey(generation), blogs)
	}
	return blogs, err
}

func (s *PersistentStorageWithCache) GetBlog(ctx context.Context, blogId string) (*models.Blog, error) {
	id, err := s.persistentStorage.NormalizeId(blogId)
	if err != nil {
		return nil, err
	}
	generation, ok := currentGeneration(ctx, s.client)
	if !ok {
		return s.persistentStorage.GetBlog(ctx, id)
	}
	var cached models.Blog
	if getFromCache(ctx, s.client, blogKey(generation, id), &cached) {
		return &cached, nil
	}
	blog, err := s.persistentStorage.GetBlog(ctx, id)
	if err == nil {
		saveToCache(ctx, s.client, blogKey(generation, id), blog)
	}
	return blog, err
}

func (s *PersistentStorageWithCache) AddBlog(ctx context.Context, blog models.Blog) (*models.Blog, error) {
	created, err := s.persistentStorage.AddBlog(ctx, blog)
	if err == nil {
		bumpGeneration(ctx, s.client)
	}
	return created, err
}

func (s *PersistentStorageWithCache) UpdateBlog(ctx context.Context, blogId string, patch models.BlogPatch) (*models.Blog, error) {
	updated, err := s.persistentStorage.UpdateBlog(ctx, blogId, patch)
	if err == nil {
		bumpGeneration(ctx, s.client)
	}
	return updated, err
}

func (s *PersistentStorageWithCache) DeleteBlog(ctx context.Context, blogId string) error {
	err := s.persistentStorage.DeleteBlog(ctx, blogId)
	if err == nil {
		bumpGeneration(ctx, s.client)
	}
	return err
}

// Close closes the redis client and the underlying storage when it holds
// resources of its own.
func (s *PersistentStorageWithCache) Close() error {
	err := s.client.Close()
	if closer, ok := s.persistentStorage.(io.Closer); ok {
		if closeErr := closer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
