package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

type Config struct {
	Server  Server
	Store   Store
	Log     Log
	Metrics Metrics
}

type Server struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Store struct {
	Backend  string
	Path     string
	InMemory bool
}

type Log struct {
	Level  string
	Format string
}

type Metrics struct {
	Enabled bool
}

// Load reads configuration from an optional config.yaml plus MICROBLOG_*
// environment variables, falling back to defaults. A missing config file is
// not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("MICROBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")

	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("store.path", "data/badger")
	v.SetDefault("store.in_memory", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("metrics.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: Server{
			Address:      v.GetString("server.address"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Store: Store{
			Backend:  v.GetString("store.backend"),
			Path:     v.GetString("store.path"),
			InMemory: v.GetBool("store.in_memory"),
		},
		Log: Log{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Metrics: Metrics{
			Enabled: v.GetBool("metrics.enabled"),
		},
	}

	if cfg.Store.Backend != BackendMemory && cfg.Store.Backend != BackendBadger {
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	return cfg, nil
}
