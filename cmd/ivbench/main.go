// Command ivbench loads intervals into a chosen engine and measures overlap
// query latency, supplementing spec.md §8 scenario 6's sub-millisecond,
// 1M-interval property with a runnable harness.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"go.ntppool.org/common/logger"
	"go.ntppool.org/common/metricsserver"
	"go.ntppool.org/common/version"

	"github.com/abh/ivstore/interval"
	"github.com/abh/ivstore/ivstore"
	"github.com/abh/ivstore/ivtypes"
)

// CLI defines the command-line interface for ivbench.
type CLI struct {
	Dump string `help:"YAML interval-dump file to load instead of generating random data." type:"path"`

	Engine string `default:"nclist" enum:"nclist,flatnest" help:"Engine to benchmark."`
	Count  int    `default:"100000" help:"Number of random intervals to generate when --dump is not given."`
	Span   int32  `default:"1000000" help:"Coordinate span for randomly generated intervals."`
	Width  int32  `default:"1000" help:"Maximum random interval width."`
	Seed   int64  `default:"1" help:"Random seed."`

	Queries  int           `default:"10000" help:"Number of overlap queries to run."`
	Duration time.Duration `default:"0s" help:"If nonzero, run queries in a loop for this long instead of --queries times."`

	MetricsPort int    `default:"9091" help:"Port for metrics server. 0 disables it."`
	LogLevel    string `default:"info" help:"Log level (debug, info, warn, error)."`
	Verbose     bool   `short:"v" help:"Enable verbose logging."`

	Version kong.VersionFlag `short:"V" help:"Show version."`
}

// metrics holds Prometheus metrics collectors.
type metrics struct {
	queries      prometheus.Counter
	queryLatency prometheus.Histogram
	adds         prometheus.Counter
}

func main() {
	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("ivbench"),
		kong.Description("Benchmark interval-index overlap queries"),
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
	ivs, err := loadOrGenerate(cli)
	if err != nil {
		return fmt.Errorf("load intervals: %w", err)
	}

	log.Info("ivbench starting",
		"version", version.Version(),
		"engine", cli.Engine,
		"intervals", len(ivs),
		"queries", cli.Queries,
	)

	m := registerMetrics()

	if cli.MetricsPort > 0 {
		metricsSrv := metricsserver.New()
		metricsSrv.Registry().MustRegister(m.queries, m.queryLatency, m.adds)
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

	start := time.Now()
	store := ivstore.New(ivstore.WithEngine(kind), ivstore.WithSeed(ivs))
	m.adds.Add(float64(len(ivs)))
	log.Info("store built", "duration", time.Since(start), "depth", store.GetDepth(), "width", store.GetWidth())

	r := rand.New(rand.NewSource(cli.Seed + 1))
	runQuery := func() {
		from := int32(r.Intn(int(cli.Span) + 1))
		to := from + int32(r.Intn(int(cli.Width)+1))
		qStart := time.Now()
		_ = store.FindOverlaps(from, to, nil)
		elapsed := time.Since(qStart)
		m.queries.Inc()
		m.queryLatency.Observe(elapsed.Seconds())
	}

	benchStart := time.Now()
	count := 0
	if cli.Duration > 0 {
		deadline := time.Now().Add(cli.Duration)
		for time.Now().Before(deadline) {
			runQuery()
			count++
		}
	} else {
		for i := 0; i < cli.Queries; i++ {
			runQuery()
			count++
		}
	}
	elapsed := time.Since(benchStart)

	avg := time.Duration(0)
	if count > 0 {
		avg = elapsed / time.Duration(count)
	}

	log.Info("benchmark complete",
		"queries_run", count,
		"duration", elapsed,
		"avg_latency", avg,
	)

	return nil
}

// loadOrGenerate loads intervals from cli.Dump if given, else generates
// cli.Count random intervals with Begin in [0, cli.Span] and width up to
// cli.Width.
func loadOrGenerate(cli *CLI) ([]interval.Interval, error) {
	if cli.Dump != "" {
		d, err := ivtypes.LoadDump(cli.Dump)
		if err != nil {
			return nil, err
		}
		return d.Intervals(), nil
	}

	r := rand.New(rand.NewSource(cli.Seed))
	ivs := make([]interval.Interval, cli.Count)
	for i := range ivs {
		from := int32(r.Intn(int(cli.Span) + 1))
		to := from + int32(r.Intn(int(cli.Width)+1))
		ivs[i] = ivtypes.Range{From: from, To: to}
	}
	return ivs, nil
}

func registerMetrics() *metrics {
	return &metrics{
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ivbench_queries_total",
			Help: "Total number of overlap queries run.",
		}),
		queryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ivbench_query_duration_seconds",
			Help:    "Overlap query latency.",
			Buckets: prometheus.DefBuckets,
		}),
		adds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ivbench_adds_total",
			Help: "Total number of intervals added during setup.",
		}),
	}
}
