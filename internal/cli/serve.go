package cli

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tianzige/internal/server"
	"github.com/matzehuels/tianzige/pkg/config"
	"github.com/matzehuels/tianzige/pkg/errors"
	"github.com/matzehuels/tianzige/pkg/pipeline"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags     gridFlags
		addr      string
		rateLimit int
		watch     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve grids over HTTP",
		Long: `Serve grids over HTTP until interrupted.

Layout and style flags set the defaults for requests that do not
override them with query parameters. With --watch, edits to the config
file replace those defaults without a restart.

Routes:
  GET /healthz       liveness probe
  GET /v1/layout     resolved grid as JSON
  GET /v1/grid.pdf   rendered grid
  GET /metrics       Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configFile()
			if watch && path == "" {
				return errors.New(errors.ErrCodeInvalidInput,
					"--watch needs a config file (pass --config or create %s)", config.DefaultPath())
			}

			opts, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			srv := server.New(c.newRunner(), c.Logger, server.Config{
				Addr:      addr,
				RateLimit: rateLimit,
				Base:      opts,
			})

			ln, err := srv.Listen()
			if err != nil {
				return err
			}
			printInfo("Listening on %s", StyleHighlight.Render(ln.Addr().String()))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return srv.Serve(ctx, ln)
			})

			if watch {
				g.Go(func() error {
					return config.Watch(ctx, path, c.Logger, func(f *config.File) {
						c.reloadBase(cmd, &flags, srv, f)
					})
				})
			}

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", server.DefaultRateLimit, "render requests per minute per client IP")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")
	flags.register(cmd, true)
	return cmd
}

// reloadBase rebuilds the server defaults from a reloaded config file.
// Explicit flags keep precedence over the file.
func (c *CLI) reloadBase(cmd *cobra.Command, flags *gridFlags, srv *server.Server, f *config.File) {
	opts := pipeline.DefaultOptions()
	opts.Logger = c.Logger
	f.Apply(&opts)
	flags.apply(cmd, &opts)

	if _, err := c.newRunner().Resolve(context.Background(), opts); err != nil {
		c.Logger.Warn("keeping previous defaults, reloaded config is invalid", "err", err)
		return
	}
	srv.SetBase(opts)
	c.Logger.Info("reloaded config", "page", opts.PageSize)
}
