package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/pavanmanishd/typedarena"
	"github.com/pavanmanishd/typedarena/internal/workload"
	"golang.org/x/sync/errgroup"
)

// Config selects which workloads to run and how arenas are sized.
type Config struct {
	Sizes           []workload.Size
	Counts          []int
	Parallel        int
	InitialCapacity int
	GrowthFactor    int
	JSON            bool
}

func configFromFlags() (Config, error) {
	cfg := Config{
		Counts:          *Counts,
		Parallel:        *Parallel,
		InitialCapacity: *InitialCapacity,
		GrowthFactor:    *GrowthFactor,
		JSON:            *JSON,
	}
	for _, s := range *Sizes {
		sz, err := workload.ParseSize(s)
		if err != nil {
			return cfg, err
		}
		cfg.Sizes = append(cfg.Sizes, sz)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no element sizes specified")
	}
	if len(c.Counts) == 0 {
		return fmt.Errorf("no counts specified")
	}
	for _, n := range c.Counts {
		if n <= 0 {
			return fmt.Errorf("invalid count %d", n)
		}
	}
	if c.Parallel < 1 {
		return fmt.Errorf("invalid parallelism %d", c.Parallel)
	}
	return nil
}

func (c Config) options() []typedarena.Option {
	return []typedarena.Option{
		typedarena.WithInitialCapacity(c.InitialCapacity),
		typedarena.WithGrowthFactor(c.GrowthFactor),
	}
}

// Row is the outcome of one size/count pair.
type Row struct {
	workload.Result
	ArenaNsPerOp     int64 `json:"arena_ns_per_op"`
	ArenaAllocsPerOp int64 `json:"arena_allocs_per_op"`
	HeapNsPerOp      int64 `json:"heap_ns_per_op"`
	HeapAllocsPerOp  int64 `json:"heap_allocs_per_op"`
}

// Bench runs every configured workload, at most cfg.Parallel at a time.
// Each workload owns its arenas; no arena is shared between goroutines.
func Bench(ctx context.Context, cfg Config, logger *slog.Logger) ([]Row, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	type job struct {
		size  workload.Size
		count int
	}
	var jobs []job
	for _, sz := range cfg.Sizes {
		for _, n := range cfg.Counts {
			jobs = append(jobs, job{sz, n})
		}
	}

	rows := make([]Row, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := benchOne(j.size, j.count, cfg.options())
			if err != nil {
				return fmt.Errorf("%s/%d: %w", j.size, j.count, err)
			}
			logger.Debug("workload done",
				"size", j.size,
				"count", j.count,
				"chunks", row.Metrics.NumChunks,
				"arena_ns", row.ArenaNsPerOp,
				"heap_ns", row.HeapNsPerOp,
			)
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func benchOne(size workload.Size, n int, opts []typedarena.Option) (Row, error) {
	res, err := workload.Run(size, n, opts...)
	if err != nil {
		return Row{}, err
	}
	row := Row{Result: res}

	var runErr error
	ar := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := workload.Run(size, n, opts...); err != nil {
				runErr = err
				return
			}
		}
	})
	hr := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if err := workload.RunHeap(size, n); err != nil {
				runErr = err
				return
			}
		}
	})
	if runErr != nil {
		return Row{}, runErr
	}
	row.ArenaNsPerOp, row.ArenaAllocsPerOp = ar.NsPerOp(), ar.AllocsPerOp()
	row.HeapNsPerOp, row.HeapAllocsPerOp = hr.NsPerOp(), hr.AllocsPerOp()
	return row, nil
}

func writeTable(w io.Writer, rows []Row) {
	fmt.Fprintln(w, "SIZE\tCOUNT\tCHUNKS\tUTIL\tARENA ns/op\tARENA allocs\tHEAP ns/op\tHEAP allocs")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\t%d\t%d\t%d\t%d\n",
			r.Size, r.Count, r.Metrics.NumChunks, r.Metrics.Utilization*100,
			r.ArenaNsPerOp, r.ArenaAllocsPerOp, r.HeapNsPerOp, r.HeapAllocsPerOp)
	}
}
