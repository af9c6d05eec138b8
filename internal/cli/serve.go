package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tooltipkit/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tooltip HTTP API",
		Example: `  tooltipkit serve --addr :9000
  curl -s localhost:9000/v1/tooltips -H 'Content-Type: application/json' \
    -d '{"data": {...}, "locale": "fr-FR"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config.Server
			if addr == "" {
				addr = cfg.Addr
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			logger := loggerFromContext(cmd.Context())
			logger.Info("starting server",
				"cache", c.config.Cache.Backend,
				"locale", c.config.Locale)
			printNextStep(cmd.OutOrStdout(), "Health check", "curl "+healthURL(addr))

			srv := server.New(runner, logger,
				server.WithMaxBodyBytes(cfg.MaxBodyBytes),
				server.WithTimeouts(cfg.ReadTimeout.Duration, cfg.WriteTimeout.Duration))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func healthURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/healthz"
}
