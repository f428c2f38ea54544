package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Database DatabaseConfig `toml:"database" envPrefix:"DATABASE_"`
	Server   ServerConfig   `toml:"server" envPrefix:"SERVER_"`
	Store    StoreConfig    `toml:"store" envPrefix:"STORE_"`
	Redis    RedisConfig    `toml:"redis" envPrefix:"REDIS_"`
	YouTube  YouTubeConfig  `toml:"youtube" envPrefix:"YOUTUBE_"`
	Log      LogConfig      `toml:"log" envPrefix:"LOG_"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path" env:"PATH"`
	MaxOpenConns int    `toml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MaxIdleConns int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host" env:"HOST"`
	Port int    `toml:"port" env:"PORT"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StoreConfig selects the backend holding the global catalog index.
type StoreConfig struct {
	Backend string `toml:"backend" env:"BACKEND"` // "sqlite" or "redis"
}

// RedisConfig contains Redis connection settings for the catalog index.
type RedisConfig struct {
	Addr      string `toml:"addr" env:"ADDR"`
	Password  string `toml:"password" env:"PASSWORD"`
	DB        int    `toml:"db" env:"DB"`
	KeyPrefix string `toml:"key_prefix" env:"KEY_PREFIX"`
}

// YouTubeConfig contains settings for playlist listing and media extraction.
type YouTubeConfig struct {
	APIKey        string `toml:"api_key" env:"API_KEY"`
	Proxy         string `toml:"proxy" env:"PROXY"`
	PlaylistLimit int    `toml:"playlist_limit" env:"PLAYLIST_LIMIT"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level" env:"LEVEL"`
}

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"

	envPrefix = "WEBMUSIC_"
)

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays WEBMUSIC_* environment variables onto the config.
//
// A .env file in the working directory is loaded first; it never overrides variables that are already set.
// GOOGLE_API_KEY is honoured as a fallback for the YouTube API key.
func ApplyEnv(config *Config, dotenvPaths ...string) error {
	if err := godotenv.Load(dotenvPaths...); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: failed to load .env: %v", ErrInvalidConfig, err)
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if config.YouTube.APIKey == "" {
		config.YouTube.APIKey = os.Getenv("GOOGLE_API_KEY")
	}

	return config.Validate()
}

// Validate checks values that would otherwise fail late at wiring time.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "", StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("%w: unknown store backend %q", ErrInvalidConfig, c.Store.Backend)
	}

	if c.Store.Backend == StoreRedis && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis backend requires redis.addr", ErrInvalidConfig)
	}

	if c.YouTube.PlaylistLimit < 0 || c.YouTube.PlaylistLimit > 50 {
		return fmt.Errorf("%w: youtube.playlist_limit must be between 0 and 50", ErrInvalidConfig)
	}

	return nil
}
