package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"bloglist/config"
	"bloglist/handlers"
	"bloglist/storage"
	"bloglist/storage/in_memory"
	"bloglist/storage/persistent"
	"bloglist/storage/persistent_cached"
)

func CreateStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageMode == config.InMemory {
		return in_memory.CreateInMemoryStorage(), nil
	}
	persistentStorage, err := persistent.CreateMongoStorage(cfg.MongoUrl, cfg.MongoDbName)
	if err != nil {
		return nil, err
	}
	if cfg.StorageMode != config.MongoWithCache {
		return persistentStorage, nil
	}
	cachedStorage, err := persistent_cached.CreatePersistentStorageCachedWithRedis(persistentStorage, cfg.RedisUrl)
	if err != nil {
		persistentStorage.Close()
		return nil, err
	}
	return cachedStorage, nil
}

// NewRouter wires the blog routes. The middleware wraps the whole router so
// that preflight and unmatched requests pass through it too.
func NewRouter(blogStorage storage.Storage, corsAllowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	handler := &handlers.HTTPHandler{Storage: blogStorage}

	r.HandleFunc("/maintenance/ping", handler.HealthCheck).Methods("GET")
	r.HandleFunc("/api/blogs", handler.HandleGetBlogs).Methods("GET")
	r.HandleFunc("/api/blogs", handler.HandleCreateBlog).Methods("POST")
	r.HandleFunc("/api/blogs/{id}", handler.HandleGetBlog).Methods("GET")
	r.HandleFunc("/api/blogs/{id}", handler.HandleUpdateBlog).Methods("PUT")
	r.HandleFunc("/api/blogs/{id}", handler.HandleDeleteBlog).Methods("DELETE")
	r.NotFoundHandler = http.HandlerFunc(handler.UnknownEndpoint)

	withCors := cors.Handler(cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
	return middleware.RequestID(middleware.Logger(middleware.Recoverer(withCors(r))))
}

func CreateServer(cfg *config.Config, blogStorage storage.Storage) *http.Server {
	return &http.Server{
		Handler:      NewRouter(blogStorage, cfg.CorsAllowedOrigins),
		Addr:         cfg.Addr(),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err.Error())
	}
	blogStorage, err := CreateStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to create '%s' storage: %s", cfg.StorageMode, err.Error())
	}

	srv := CreateServer(cfg, blogStorage)
	go func() {
		log.Printf("Start serving on %s with '%s' storage", srv.Addr, cfg.StorageMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %s", err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %s", err.Error())
	}
	if closer, ok := blogStorage.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Printf("Failed to close storage: %s", err.Error())
		}
	}
}
