// Package cli implements the tooltipkit command-line interface.
//
// # Commands
//
//   - build: print the tooltip table of a data view
//   - browse: step through data points interactively
//   - serve: run the HTTP API
//   - cache: inspect and clear the cache
//
// Settings come from the TOML config file (see pkg/config) and are
// overridden by flags. All commands support --verbose (-v) for debug-level
// logging; the logger travels through the command context.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tooltipkit/pkg/buildinfo"
	"github.com/matzehuels/tooltipkit/pkg/cache"
	"github.com/matzehuels/tooltipkit/pkg/config"
	"github.com/matzehuels/tooltipkit/pkg/localize"
	"github.com/matzehuels/tooltipkit/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          config.AppName,
		Short:        "tooltipkit builds chart tooltips from categorical data views",
		Long:         `tooltipkit turns the categorical data view behind a chart into the ordered, formatted and localized tooltip entries shown for each data point.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			traceEvents(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tooltipkit/config.toml)")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner from the loaded configuration.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(ctx, c.config, noCache)
	if err != nil {
		return nil, err
	}
	bundle, err := newBundle(c.config)
	if err != nil {
		cc.Close()
		return nil, err
	}

	// Formatting may change between releases, so keys are scoped by version.
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version+":")
	r := pipeline.NewRunner(cc, keyer, c.Logger)
	r.Bundle = bundle
	if ttl := c.config.Cache.TTL.Duration; ttl > 0 {
		r.TTL = ttl
	}
	return r, nil
}

// newCache opens the configured cache backend.
func newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return rc, nil
	case config.BackendFile:
		dir, err := cfg.CacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return cache.NewNullCache(), nil
	}
}

// newBundle loads the built-in resources plus the configured directory.
func newBundle(cfg config.Config) (*localize.Bundle, error) {
	b, err := localize.NewBundle()
	if err != nil {
		return nil, err
	}
	if cfg.Resources != "" {
		if err := b.AddDir(cfg.Resources); err != nil {
			return nil, err
		}
	}
	return b, nil
}
