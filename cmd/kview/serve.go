package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/kview-dev/kview/internal/config"
	"github.com/kview-dev/kview/pkg/metrics"
	"github.com/kview-dev/kview/pkg/server"
	"github.com/kview-dev/kview/showcase"
)

const tracerName = "github.com/kview-dev/kview"

func serveCmd(load func() (*config.Config, error)) *cobra.Command {
	var (
		port  int
		host  string
		sync  bool
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the showcase application",
		Long: `Serve the showcase application over HTTP and websockets.

Every page load creates a session with its own document and event
loop. The browser client attaches to it and receives mutations after
each render.

Examples:
  kview serve
  kview serve --port=3000
  kview serve --host=0.0.0.0 --sync`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("sync") {
				cfg.Render.Sync = sync
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, debug)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from kview.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from kview.json)")
	cmd.Flags().BoolVar(&sync, "sync", false, "Patch synchronously instead of batching renders")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log every frame in the browser console")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, debug bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := cfg.Logger(os.Stderr)
	srv := server.New(showcase.App, serverConfig(cfg, logger, debug))

	printBanner()
	info("Listening on http://%s", cfg.Address())
	if cfg.Metrics.Enabled {
		info("Metrics at %s", cfg.Metrics.Path)
	}

	return srv.Run(ctx)
}

// serverConfig maps the project configuration onto the server.
func serverConfig(cfg *config.Config, logger *slog.Logger, debug bool) *server.Config {
	sc := server.DefaultConfig()
	sc.Address = cfg.Address()
	sc.WSPath = cfg.Server.WSPath
	if title := cfg.Title(); title != "" {
		sc.Title = title
	}
	sc.SyncMode = cfg.Render.Sync
	sc.ReadTimeout = cfg.ReadTimeout()
	sc.WriteTimeout = cfg.WriteTimeout()
	sc.PingInterval = cfg.PingInterval()
	sc.AllowedOrigins = cfg.Server.AllowedOrigins
	sc.Debug = debug
	sc.Logger = logger
	sc.Tracer = otel.Tracer(tracerName)
	if cfg.Metrics.Enabled {
		sc.MetricsPath = cfg.Metrics.Path
		sc.Observer = metrics.New(metrics.WithNamespace(cfg.Metrics.Namespace))
	}
	return sc
}
