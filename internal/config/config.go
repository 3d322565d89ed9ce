// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store selects where live game state is kept
type Store string

const (
	StoreMemory Store = "memory"
	StoreRedis  Store = "redis"
)

// Config holds everything cmd/thousand needs to start
type Config struct {
	// Locale picks the message catalog, e.g. en-US or ru-RU
	Locale string `env:"THOUSAND_LOCALE" envDefault:"en-US"`

	// AssetDir is searched for dice1.png through dice6.png
	AssetDir string `env:"THOUSAND_ASSET_DIR" envDefault:"assets"`

	// FramePath, when set, receives a PNG of every animation frame and roll
	FramePath string `env:"THOUSAND_FRAME_PATH"`

	// FontPath is an optional TTF used for placeholder text in frames
	FontPath string `env:"THOUSAND_FONT_PATH"`

	AnimationFrames   int           `env:"THOUSAND_ANIMATION_FRAMES" envDefault:"30"`
	AnimationInterval time.Duration `env:"THOUSAND_ANIMATION_INTERVAL" envDefault:"100ms"`

	// Seed makes dice reproducible; 0 seeds from the clock
	Seed int64 `env:"THOUSAND_SEED"`

	Store         Store         `env:"THOUSAND_STORE" envDefault:"memory"`
	StateTTL      time.Duration `env:"THOUSAND_STATE_TTL" envDefault:"24h"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`

	LogLevel slog.Level `env:"THOUSAND_LOG_LEVEL" envDefault:"info"`
}

// DotEnvFile is read by Load when present
const DotEnvFile = ".env"

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	return LoadFile(DotEnvFile)
}

// LoadFile reads the given dotenv file, if it exists, and then the process
// environment. Variables already set in the environment take precedence.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return Parse()
}

// Parse reads the process environment without touching .env
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings that cannot work
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("THOUSAND_STORE must be %q or %q, got %q", StoreMemory, StoreRedis, c.Store)
	}

	if c.AnimationFrames < 0 {
		return fmt.Errorf("THOUSAND_ANIMATION_FRAMES cannot be negative")
	}

	if c.AnimationInterval < 0 {
		return fmt.Errorf("THOUSAND_ANIMATION_INTERVAL cannot be negative")
	}

	return nil
}
