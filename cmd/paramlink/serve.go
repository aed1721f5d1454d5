package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/paramlink/internal/cli"
	"github.com/aretw0/paramlink/internal/logging"
	httpadapter "github.com/aretw0/paramlink/pkg/adapters/http"
	"github.com/aretw0/paramlink/pkg/adapters/memory"
	"github.com/aretw0/paramlink/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the control over HTTP",
	Long:  `Mounts a control on the scene and serves a JSON API to drive it, plus Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := observability.NewMetrics(reg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := cli.NewSession(ctx, cfg, cli.Presenter{
			Widgets: memory.NewWidgetFactory(),
			Errors:  logging.NewErrorSink(logger),
			Hooks:   metrics.Hooks(),
		}, logger)
		if err != nil {
			return err
		}
		defer s.Close()

		handler := httpadapter.NewHandler(s.Control,
			httpadapter.WithLogger(logger),
			httpadapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		)
		return cli.Serve(ctx, cfg.HTTP.Addr, handler, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (default :8080)")
}
