// Package config loads the HTTP server configuration.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file and OSSIM_* environment variables (OSSIM_SERVER_ADDR,
// OSSIM_LRU_MAX_FRAMES, ...).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/os-sim/os-sim/sim/lru"
	"github.com/os-sim/os-sim/sim/replay"
)

// ServerConfig holds everything the API server needs.
type ServerConfig struct {
	Addr             string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	BodyLimit        int
	DefaultFrames    int
	MinFrames        int
	MaxFrames        int
	MaxReferences    int
	MaxProcesses     int
	ScheduleInterval time.Duration // suggested replay pacing returned to clients
	PagingInterval   time.Duration
	LogLevel         string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":9095")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("lru.default_frames", lru.DefaultFrameCount)
	v.SetDefault("lru.min_frames", lru.MinFrameCount)
	v.SetDefault("lru.max_frames", lru.MaxFrameCount)
	v.SetDefault("lru.max_references", 1000)
	v.SetDefault("fcfs.max_processes", 100)
	v.SetDefault("replay.schedule_interval", replay.DefaultScheduleInterval)
	v.SetDefault("replay.paging_interval", replay.DefaultPagingInterval)
	v.SetDefault("log.level", "info")
}

// Load reads the configuration. An empty path looks for config.yaml in the
// working directory and silently falls back to defaults when it is absent; an
// explicit path must exist.
func Load(path string) (*ServerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("ossim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		logrus.Debug("no config file found, using defaults")
	} else {
		logrus.Debugf("using config file %s", v.ConfigFileUsed())
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration, ignoring files and environment.
func Default() *ServerConfig {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) *ServerConfig {
	return &ServerConfig{
		Addr:             v.GetString("server.addr"),
		ReadTimeout:      v.GetDuration("server.read_timeout"),
		WriteTimeout:     v.GetDuration("server.write_timeout"),
		BodyLimit:        v.GetInt("server.body_limit"),
		DefaultFrames:    v.GetInt("lru.default_frames"),
		MinFrames:        v.GetInt("lru.min_frames"),
		MaxFrames:        v.GetInt("lru.max_frames"),
		MaxReferences:    v.GetInt("lru.max_references"),
		MaxProcesses:     v.GetInt("fcfs.max_processes"),
		ScheduleInterval: v.GetDuration("replay.schedule_interval"),
		PagingInterval:   v.GetDuration("replay.paging_interval"),
		LogLevel:         v.GetString("log.level"),
	}
}

// Validate checks ranges and internal consistency.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.BodyLimit <= 0 {
		return fmt.Errorf("server.body_limit must be positive, got %d", c.BodyLimit)
	}
	if c.MinFrames < 1 {
		return fmt.Errorf("lru.min_frames must be at least 1, got %d", c.MinFrames)
	}
	if c.MaxFrames < c.MinFrames {
		return fmt.Errorf("lru.max_frames (%d) must be >= lru.min_frames (%d)", c.MaxFrames, c.MinFrames)
	}
	if c.DefaultFrames < c.MinFrames || c.DefaultFrames > c.MaxFrames {
		return fmt.Errorf("lru.default_frames must be in [%d, %d], got %d", c.MinFrames, c.MaxFrames, c.DefaultFrames)
	}
	if c.MaxReferences < 1 {
		return fmt.Errorf("lru.max_references must be positive, got %d", c.MaxReferences)
	}
	if c.MaxProcesses < 1 {
		return fmt.Errorf("fcfs.max_processes must be positive, got %d", c.MaxProcesses)
	}
	if c.ScheduleInterval < 0 || c.PagingInterval < 0 {
		return fmt.Errorf("replay intervals must be non-negative")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
