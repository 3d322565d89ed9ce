package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "assets", cfg.AssetDir)
	assert.Equal(t, 30, cfg.AnimationFrames)
	assert.Equal(t, 100*time.Millisecond, cfg.AnimationInterval)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, 24*time.Hour, cfg.StateTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.FramePath)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("THOUSAND_LOCALE", "ru-RU")
	t.Setenv("THOUSAND_ANIMATION_FRAMES", "5")
	t.Setenv("THOUSAND_ANIMATION_INTERVAL", "20ms")
	t.Setenv("THOUSAND_SEED", "99")
	t.Setenv("THOUSAND_STORE", "redis")
	t.Setenv("THOUSAND_LOG_LEVEL", "debug")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "ru-RU", cfg.Locale)
	assert.Equal(t, 5, cfg.AnimationFrames)
	assert.Equal(t, 20*time.Millisecond, cfg.AnimationInterval)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseRejectsUnknownStore(t *testing.T) {
	t.Setenv("THOUSAND_STORE", "sqlite")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParseRejectsBadDuration(t *testing.T) {
	t.Setenv("THOUSAND_ANIMATION_INTERVAL", "soon")

	_, err := Parse()
	assert.Error(t, err)
}

func TestLoadFileMissingIsIgnored(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.Locale)
}

func TestLoadFileReadsValues(t *testing.T) {
	t.Setenv("THOUSAND_ASSET_DIR", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("THOUSAND_ASSET_DIR=from-file\nTHOUSAND_ANIMATION_FRAMES=7\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("THOUSAND_ANIMATION_FRAMES") })

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.AssetDir)
	assert.Equal(t, 7, cfg.AnimationFrames)
}

func TestLoadFileRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BROKEN!KEY=value\n"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
