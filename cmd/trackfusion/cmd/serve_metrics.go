package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveMetricsListenAddr string

var serveMetricsCmd = &cobra.Command{
	Use:   "serve-metrics",
	Short: "Serve Prometheus metrics over HTTP",
	Long: `serve-metrics exposes the default Prometheus registry (which every
build command's Recorder registers into) at /metrics until interrupted.`,
	RunE: runServeMetrics,
}

func init() {
	serveMetricsCmd.Flags().StringVar(&serveMetricsListenAddr, "listen-addr", "", "address to listen on (defaults to metrics.listen_addr)")
}

func runServeMetrics(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	addr := serveMetricsListenAddr
	if addr == "" {
		addr = cfg.Metrics.ListenAddr
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	slog.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("serve-metrics: %w", err)
	}
	return nil
}
