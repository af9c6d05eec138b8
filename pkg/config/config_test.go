package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
locale = "de-DE"

[cache]
backend = "redis"
ttl = "1h"

[redis]
addr = "redis:6379"
db = 2

[server]
addr = ":9090"
read_timeout = "5s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "de-DE" {
		t.Errorf("Locale = %q, want de-DE", cfg.Locale)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("Cache = %+v, want redis/1h", cfg.Cache)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Redis.Prefix != "tooltipkit:" {
		t.Errorf("unset Redis.Prefix = %q, want default", cfg.Redis.Prefix)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout.Duration != 30*time.Second {
		t.Errorf("unset WriteTimeout = %v, want default", cfg.Server.WriteTimeout)
	}
	if cfg.LocaleTag().String() != "de-DE" {
		t.Errorf("LocaleTag() = %v", cfg.LocaleTag())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code tkerrors.Code
	}{
		{"malformed", "locale = ", tkerrors.ErrCodeInvalidConfig},
		{"bad duration", "[cache]\nttl = \"soon\"\n", tkerrors.ErrCodeInvalidConfig},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", tkerrors.ErrCodeInvalidConfig},
		{"bad locale", "locale = \"??\"\n", tkerrors.ErrCodeInvalidLocale},
		{"redis without addr", "[cache]\nbackend = \"redis\"\n[redis]\naddr = \"\"\n", tkerrors.ErrCodeInvalidConfig},
		{"negative ttl", "[cache]\nttl = \"-1h\"\n", tkerrors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !tkerrors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !tkerrors.Is(err, tkerrors.ErrCodeFileNotFound) {
		t.Errorf("explicit missing path error = %v, want FILE_NOT_FOUND", err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing default file should not error: %v", err)
	}
	if cfg.Locale != Default().Locale {
		t.Errorf("Locale = %q, want default", cfg.Locale)
	}
}

func TestDefaultPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if want := filepath.Join(dir, "tooltipkit", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestCacheDir(t *testing.T) {
	cfg := Default()
	cfg.Cache.Dir = "/var/cache/tk"
	if got, _ := cfg.CacheDir(); got != "/var/cache/tk" {
		t.Errorf("explicit CacheDir() = %q", got)
	}

	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	cfg.Cache.Dir = ""
	got, err := cfg.CacheDir()
	if err != nil {
		t.Fatalf("CacheDir: %v", err)
	}
	if want := filepath.Join(dir, "tooltipkit"); got != want {
		t.Errorf("CacheDir() = %q, want %q", got, want)
	}
}

func TestLocaleTagFallback(t *testing.T) {
	cfg := Default()
	cfg.Locale = "!!"
	if got := cfg.LocaleTag().String(); got != "en-US" {
		t.Errorf("LocaleTag() = %q, want en-US", got)
	}
}
