// Package config loads tooltipkit settings from a TOML file.
//
// Settings are layered: [Default] values, then the file, then whatever the
// caller (usually CLI flags) overrides on the returned struct. The file is
// looked up at $XDG_CONFIG_HOME/tooltipkit/config.toml, falling back to
// ~/.config/tooltipkit/config.toml.
//
//	locale = "de-DE"
//	resources = "/etc/tooltipkit/strings"
//
//	[cache]
//	backend = "redis"
//	ttl = "1h"
//
//	[redis]
//	addr = "redis:6379"
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "tooltipkit"

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Duration is a time.Duration read from a TOML string ("24h", "90s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the complete tooltipkit configuration.
type Config struct {
	Locale    string       `toml:"locale"`
	Resources string       `toml:"resources"`
	Cache     CacheConfig  `toml:"cache"`
	Redis     RedisConfig  `toml:"redis"`
	Server    ServerConfig `toml:"server"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`
}

// RedisConfig is used when Cache.Backend is "redis".
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale: "en-US",
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     Duration{24 * time.Hour},
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: AppName + ":",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
			MaxBodyBytes: 8 << 20,
		},
	}
}

// Load reads the config file at path on top of [Default].
//
// With an empty path the default location is tried and a missing file is
// not an error. A missing explicit path is FILE_NOT_FOUND.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, tkerrors.Wrap(tkerrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, tkerrors.Wrap(tkerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration for unusable values.
func (c Config) Validate() error {
	if _, err := tkerrors.ValidateLocale(c.Locale); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case BackendNone, BackendFile, BackendRedis:
	default:
		return tkerrors.New(tkerrors.ErrCodeInvalidConfig,
			"invalid cache backend: %s (must be 'none', 'file', or 'redis')", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Redis.Addr == "" {
		return tkerrors.New(tkerrors.ErrCodeInvalidConfig, "redis backend requires redis.addr")
	}
	if c.Cache.TTL.Duration < 0 {
		return tkerrors.New(tkerrors.ErrCodeInvalidConfig, "cache ttl cannot be negative")
	}
	if c.Server.MaxBodyBytes < 0 {
		return tkerrors.New(tkerrors.ErrCodeInvalidConfig, "server max_body_bytes cannot be negative")
	}
	if c.Resources != "" {
		if err := tkerrors.ValidatePath(c.Resources); err != nil {
			return err
		}
	}
	return nil
}

// LocaleTag returns the parsed locale, or the default locale when invalid.
func (c Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// CacheDir returns Cache.Dir, or the XDG cache directory when unset.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}
