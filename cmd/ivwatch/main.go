// Command ivwatch watches a directory of YAML interval-dump files and keeps
// a long-lived interval store synced with their contents, mirroring
// cmd/rrr-server's watch-and-serve shape around the watcher package.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"go.ntppool.org/common/logger"
	"go.ntppool.org/common/metricsserver"
	"go.ntppool.org/common/version"

	"github.com/abh/ivstore/ivstore"
	"github.com/abh/ivstore/ivwatch"
)

// CLI defines the command-line interface for ivwatch.
type CLI struct {
	WatchDir string `arg:"" help:"Directory of YAML interval-dump files to watch." type:"path"`

	Engine     string        `default:"nclist" enum:"nclist,flatnest" help:"Engine backing the watched store."`
	BatchDelay time.Duration `default:"500ms" help:"Debounce delay after a filesystem event before reloading."`

	MetricsPort int    `default:"9092" help:"Port for metrics server. 0 disables it."`
	LogLevel    string `default:"info" help:"Log level (debug, info, warn, error)."`
	Verbose     bool   `short:"v" help:"Enable verbose logging."`

	Version kong.VersionFlag `short:"V" help:"Show version."`
}

func main() {
	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("ivwatch"),
		kong.Description("Watch a directory of interval dumps and keep a store in sync"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version()},
	)

	if cli.Verbose {
		os.Setenv("LOG_LEVEL", "DEBUG")
	} else if cli.LogLevel != "" {
		os.Setenv("LOG_LEVEL", cli.LogLevel)
	}

	log := logger.Setup()

	if err := run(context.Background(), &cli, log); err != nil {
		log.Error("fatal error", "error", err)
		kctx.Exit(1)
	}
}

func run(ctx context.Context, cli *CLI, log *slog.Logger) error {
	watchDir, err := filepath.Abs(cli.WatchDir)
	if err != nil {
		return fmt.Errorf("resolve watch dir: %w", err)
	}

	fi, err := os.Stat(watchDir)
	if err != nil {
		return fmt.Errorf("stat watch dir: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("watch dir is not a directory: %s", watchDir)
	}

	log.Info("starting ivwatch",
		"version", version.Version(),
		"watch_dir", watchDir,
		"engine", cli.Engine,
		"batch_delay", cli.BatchDelay,
		"metrics_port", cli.MetricsPort,
	)

	reloadsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ivwatch_reloads_total",
		Help: "Total number of store reloads triggered by filesystem events.",
	})
	reloadDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ivwatch_reload_duration_seconds",
		Help:    "Time taken to reload the store from disk.",
		Buckets: prometheus.DefBuckets,
	})
	storeSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ivwatch_store_size",
		Help: "Current number of intervals in the watched store.",
	})

	if cli.MetricsPort > 0 {
		metricsSrv := metricsserver.New()
		metricsSrv.Registry().MustRegister(reloadsTotal, reloadDuration, storeSize)
		go func() {
			log.Info("metrics server starting", "port", cli.MetricsPort)
			if err := metricsSrv.ListenAndServe(ctx, cli.MetricsPort); err != nil {
				log.Error("metrics server error", "error", err)
			}
		}()
	}

	kind := ivstore.EngineNCList
	if cli.Engine == "flatnest" {
		kind = ivstore.EngineFlatNest
	}
	store := ivstore.New(ivstore.WithEngine(kind))

	w, err := ivwatch.New(watchDir, store,
		ivwatch.WithBatchDelay(cli.BatchDelay),
		ivwatch.WithVerbose(cli.Verbose),
		ivwatch.WithErrorHandler(func(err error) {
			log.Error("watch error", "error", err)
		}),
		ivwatch.WithReloadCallback(func(count int, duration time.Duration) {
			reloadsTotal.Inc()
			reloadDuration.Observe(duration.Seconds())
			storeSize.Set(float64(count))
			log.Info("store reloaded", "intervals", count, "duration", duration)
		}),
	)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := w.Start(); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	log.Info("watcher started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Info("received shutdown signal", "signal", sig.String())

	if err := w.Stop(); err != nil {
		return fmt.Errorf("stop watcher: %w", err)
	}
	log.Info("shutdown complete", "final_size", store.Size())

	return nil
}
