package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vastuplan/vastuplan/internal/config"
	"github.com/vastuplan/vastuplan/internal/server"
	"github.com/vastuplan/vastuplan/pkg/cache"
	"github.com/vastuplan/vastuplan/pkg/pipeline"
	"github.com/vastuplan/vastuplan/pkg/planstore"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the floor plan HTTP service",
		Long: `Serve starts the HTTP API for generating, listing and downloading
floor plans. Configuration comes from an optional TOML file and
VASTUPLAN_* environment variables; flags override both.`,
		Example: `  vastuplan serve
  vastuplan serve --config vastuplan.toml --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			store, err := newStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			renderCache, err := newServeCache(cfg)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(renderCache, c.Logger)
			defer runner.Close()

			srv := &server.Server{
				Runner:         runner,
				Store:          store,
				Logger:         c.Logger,
				OutputDir:      cfg.Server.OutputDir,
				Retention:      cfg.Server.RetentionDuration(),
				ListLimit:      cfg.Server.ListLimit,
				BasePxPerMeter: cfg.Render.BasePxPerMeter,
				MaxCanvasPx:    cfg.Render.MaxCanvasPx,
			}
			return srv.ListenAndServe(cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// newStore builds the plan record store selected by the config.
func newStore(ctx context.Context, cfg config.Config) (planstore.Store, error) {
	switch cfg.Store.Backend {
	case "file":
		dir := cfg.Store.Dir
		if dir == "" {
			dir = filepath.Join(cfg.Server.OutputDir, ".records")
		}
		return planstore.NewFileStore(dir)
	case "redis":
		return planstore.NewRedisStore(ctx, cfg.Store.RedisAddr)
	}
	return planstore.NewMemoryStore(), nil
}

// newServeCache builds the render cache for the service. An empty
// cache dir disables caching.
func newServeCache(cfg config.Config) (cache.Cache, error) {
	if cfg.Cache.Dir == "" {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(cfg.Cache.Dir)
}
