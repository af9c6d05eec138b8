package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tooltipkit/pkg/cache"
	"github.com/matzehuels/tooltipkit/pkg/config"
	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the tooltip cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cacheInfoCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached view and tooltip table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if c.config.Cache.Backend == config.BackendNone {
				printInfo(w, "Caching is disabled")
				return nil
			}

			cc, err := newCache(cmd.Context(), c.config, false)
			if err != nil {
				return err
			}
			defer cc.Close()

			clearer, ok := cc.(cache.Clearer)
			if !ok {
				return tkerrors.New(tkerrors.ErrCodeUnsupported, "cache backend %q cannot be cleared", c.config.Cache.Backend)
			}
			n, err := clearer.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess(w, "Cleared %d cached entries", n)
			printDetail(w, "Backend: %s", cacheLocation(c.config))
			return nil
		},
	}
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the cache backend and location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			printKeyValue(w, "Backend", c.config.Cache.Backend)
			printKeyValue(w, "Location", cacheLocation(c.config))
			printKeyValue(w, "TTL", c.config.Cache.TTL.String())

			if c.config.Cache.Backend != config.BackendFile {
				return nil
			}
			cc, err := newCache(cmd.Context(), c.config, false)
			if err != nil {
				return err
			}
			defer cc.Close()
			if in, ok := cc.(cache.Inspector); ok {
				u, err := in.Usage(cmd.Context())
				if err != nil {
					return fmt.Errorf("inspect cache: %w", err)
				}
				printKeyValue(w, "Entries", fmt.Sprintf("%d (%s)", u.Entries, formatBytes(u.Bytes)))
			}
			return nil
		},
	}
}

// cacheLocation describes where the configured backend keeps its entries.
func cacheLocation(cfg config.Config) string {
	switch cfg.Cache.Backend {
	case config.BackendRedis:
		return fmt.Sprintf("redis://%s/%d (prefix %q)", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Prefix)
	case config.BackendFile:
		dir, err := cfg.CacheDir()
		if err != nil {
			return "unavailable"
		}
		return dir
	default:
		return "none"
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
