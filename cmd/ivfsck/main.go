// Command ivfsck loads an interval dump, builds an NCList/flat-nest pair
// from it, and runs the cross-engine structural check, mirroring
// cmd/rrr-fsck/main.go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"go.ntppool.org/common/version"

	"github.com/abh/ivstore/ivcheck"
	"github.com/abh/ivstore/ivstore"
	"github.com/abh/ivstore/ivtypes"
)

// CLI defines the command-line interface for ivfsck.
type CLI struct {
	DumpFile string `arg:"" help:"Path to a YAML interval-dump file." type:"path"`

	Verbose bool `short:"v" help:"Enable verbose logging."`

	Version kong.VersionFlag `short:"V" help:"Show version."`
}

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("ivfsck"),
		kong.Description("Verify cross-engine interval index consistency"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version()},
	)

	if err := run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		ctx.Exit(1)
	}
}

func run(cli *CLI) error {
	dumpPath, err := filepath.Abs(cli.DumpFile)
	if err != nil {
		return fmt.Errorf("resolve dump path: %w", err)
	}

	if _, err := os.Stat(dumpPath); err != nil {
		return fmt.Errorf("dump file not found: %w", err)
	}

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if cli.Verbose {
		fmt.Printf("Checking interval dump: %s\n", dumpPath)
	}

	dump, err := ivtypes.LoadDump(dumpPath)
	if err != nil {
		return fmt.Errorf("load dump: %w", err)
	}
	ivs := dump.Intervals()

	if cli.Verbose {
		fmt.Printf("Loaded %d intervals\n", len(ivs))
	}

	storeA := ivstore.New(ivstore.WithEngine(ivstore.EngineNCList), ivstore.WithSeed(ivs))
	storeB := ivstore.New(ivstore.WithEngine(ivstore.EngineFlatNest), ivstore.WithSeed(ivs))

	result, err := ivcheck.Run(storeA, storeB, ivcheck.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	fmt.Println("\n=== Summary ===")
	fmt.Printf("Intervals: %d\n", len(ivs))
	fmt.Printf("Issues found: %d\n", result.Issues)
	for check, count := range result.IssuesFound {
		fmt.Printf("  %s: %d\n", check, count)
	}

	if result.Issues > 0 {
		return fmt.Errorf("found %d issues", result.Issues)
	}

	fmt.Println("✓ No issues found")
	return nil
}
