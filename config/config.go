// Package config reads the service settings from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"bloglist/utils"
)

type StorageMode string

const (
	InMemory       StorageMode = "inmemory"
	Mongo          StorageMode = "mongo"
	MongoWithCache StorageMode = "cached"
)

type Config struct {
	Port               string
	StorageMode        StorageMode
	MongoUrl           string
	MongoDbName        string
	RedisUrl           string
	CorsAllowedOrigins []string
}

func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// Load reads the configuration. Values already in the environment win over
// the ones from the .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %s", err.Error())
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:               utils.GetEnvVarWithDefault("SERVER_PORT", "8080"),
		StorageMode:        StorageMode(utils.GetEnvVarWithDefault("STORAGE_MODE", string(InMemory))),
		CorsAllowedOrigins: utils.GetEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	switch cfg.StorageMode {
	case InMemory:
		return cfg, nil
	case Mongo, MongoWithCache:
	default:
		return nil, fmt.Errorf("invalid STORAGE_MODE %q", cfg.StorageMode)
	}

	var err error
	if cfg.MongoUrl, err = utils.GetEnvVar("MONGO_URL"); err != nil {
		return nil, err
	}
	if cfg.MongoDbName, err = utils.GetEnvVar("MONGO_DBNAME"); err != nil {
		return nil, err
	}
	if cfg.StorageMode == MongoWithCache {
		if cfg.RedisUrl, err = utils.GetEnvVar("REDIS_URL"); err != nil {
			return nil, fmt.Errorf("%w for '%s' STORAGE_MODE", err, MongoWithCache)
		}
	}
	return cfg, nil
}
