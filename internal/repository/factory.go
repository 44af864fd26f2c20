// Package repository provides the initialization for repository implementations
package repository

import (
	"log"

	"github.com/navikt/zhotel/internal/config"
	"github.com/navikt/zhotel/internal/repository/memory"
	"github.com/navikt/zhotel/internal/repository/redis"
)

// NewRepository returns a Redis repository when Redis is enabled and an
// in-memory repository otherwise
func NewRepository(cfg config.RedisConfig) (Repository, error) {
	if !cfg.Enabled {
		log.Printf("Using in-memory repository")
		return memory.NewRepository(), nil
	}

	repo, err := redis.NewRepository(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("Using Redis repository with key prefix %q", cfg.KeyPrefix)
	return repo, nil
}
