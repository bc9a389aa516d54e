package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackplot/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		opts cacheOpts
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Serve chart renders over HTTP.

POST a TOML or JSON chart to /v1/render?format=svg|png|pdf|json. Artifacts
are cached in Redis when --redis is set, otherwise in the local cache
directory. The Redis password is read from STACKPLOT_REDIS_PASSWORD.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, opts)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer runner.Close()
			return server.New(runner, loggerFromContext(ctx)).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the artifact cache (host:port)")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().BoolVar(&opts.disabled, "no-cache", false, "disable the artifact cache")

	return cmd
}
