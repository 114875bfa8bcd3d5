// Command arena-bench compares typed arena allocation against the Go heap.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/lmittmann/tint"
	"github.com/pavanmanishd/typedarena/internal/pflagx"
	"github.com/spf13/pflag"
)

var (
	EnvPrefix       = "ARENA_BENCH_"
	Sizes           = pflag.StringSliceP("sizes", "s", []string{"small", "medium", "big"}, "element sizes to run (small, medium, big)")
	Counts          = pflag.IntSliceP("counts", "n", []int{2000, 4000, 6000, 8000, 10000}, "objects allocated per run")
	Parallel        = pflag.IntP("parallel", "j", 1, "workloads run concurrently, one arena each")
	InitialCapacity = pflag.Int("initial-capacity", 0, "first chunk capacity in slots (0 for the default)")
	GrowthFactor    = pflag.Int("growth-factor", 2, "chunk capacity growth factor")
	JSON            = pflag.Bool("json", false, "write results as json")
	LogLevel        = pflagx.LevelP("log-level", "L", slog.LevelInfo, "log level")
	LogJSON         = pflag.Bool("log-json", false, "use json logs")
	Help            = pflag.BoolP("help", "h", false, "show this help text")
)

func main() {
	if err := pflagx.ParseEnv(EnvPrefix); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	pflag.Parse()

	if *Help || pflag.NArg() != 0 {
		fmt.Printf("usage: %s [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		if *Help {
			return
		}
		os.Exit(2)
	}

	if *LogJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: LogLevel,
		})))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: LogLevel,
		})))
	}

	cfg, err := configFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("failed to run benchmarks", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	slog.Info("running workloads",
		"sizes", cfg.Sizes,
		"counts", cfg.Counts,
		"parallel", cfg.Parallel,
	)
	rows, err := Bench(ctx, cfg, slog.Default())
	if err != nil {
		return err
	}
	if cfg.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		return nil
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	writeTable(tw, rows)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
