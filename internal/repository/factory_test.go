package repository_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/navikt/zhotel/internal/config"
	"github.com/navikt/zhotel/internal/repository"
	"github.com/navikt/zhotel/internal/repository/memory"
	"github.com/navikt/zhotel/internal/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepository(t *testing.T) {
	t.Run("memory when redis is disabled", func(t *testing.T) {
		repo, err := repository.NewRepository(config.RedisConfig{})
		require.NoError(t, err)
		assert.IsType(t, &memory.Repository{}, repo)
	})

	t.Run("redis when enabled", func(t *testing.T) {
		mr := miniredis.RunT(t)

		repo, err := repository.NewRepository(config.RedisConfig{
			Enabled:   true,
			Host:      mr.Host(),
			Port:      mr.Port(),
			KeyPrefix: "test:",
		})
		require.NoError(t, err)
		assert.IsType(t, &redis.Repository{}, repo)
	})

	t.Run("error when redis is unreachable", func(t *testing.T) {
		_, err := repository.NewRepository(config.RedisConfig{
			Enabled: true,
			URI:     "not a uri",
		})
		assert.Error(t, err)
	})
}
