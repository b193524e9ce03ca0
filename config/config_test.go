package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ph-news-backend/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "news", cfg.Database)
	assert.Equal(t, "articles", cfg.Collection)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, "debug", cfg.GinMode)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "portal")
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("SEED_ON_START", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "portal", cfg.Database)
	assert.Equal(t, ":9090", cfg.Address())
	assert.Equal(t, "release", cfg.GinMode)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("PORT", "abc")
	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("PORT", "70000")
	_, err = config.Load()
	require.Error(t, err)

	t.Setenv("PORT", "8080")
	t.Setenv("GIN_MODE", "verbose")
	_, err = config.Load()
	require.Error(t, err)
}
