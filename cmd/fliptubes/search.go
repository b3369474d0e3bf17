package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/fine-structures/fliptubes/libtubes"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		configPath string
		flags      RunConfig
	)

	cmd := &cobra.Command{
		Use:   "search <source> <paths|p|cycles|c> <tries> [y|n]",
		Short: "searches each graph in <source> for a facet Hamiltonian path or cycle",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultRunConfig()
			if configPath != "" {
				if err := cfg.LoadFile(configPath); err != nil {
					return err
				}
			}
			if err := cfg.ApplyArgs(args); err != nil {
				return err
			}
			applyFlags(&cfg, &flags, cmd)
			if err := cfg.Validate(); err != nil {
				return err
			}

			allFound, err := runSearch(cmd.Context(), &cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !allFound {
				cmd.SilenceErrors = true
				return errNotAllFound
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "YAML run config (positional args and flags override it)")
	fs.IntVar(&flags.Workers, "workers", 0, "max concurrent trials per graph (0 denotes GOMAXPROCS)")
	fs.Uint64Var(&flags.Seed, "seed", 0, "base seed for trial RNGs (0 denotes random)")
	fs.BoolVar(&flags.DropDupes, "drop-dupes", false, "skip graphs whose edge set was already searched")
	fs.StringVar(&flags.MetricsAddr, "metrics-addr", "", "serve prometheus metrics at this address during the run")
	fs.BoolVar(&flags.Talk, "talk", false, "print each found walk (same as a trailing 'y')")
	return cmd
}

var errNotAllFound = errors.New("not all graphs have a witness")

// applyFlags overlays only the flags explicitly set on the command line.
func applyFlags(cfg, flags *RunConfig, cmd *cobra.Command) {
	fs := cmd.Flags()
	if fs.Changed("workers") {
		cfg.Workers = flags.Workers
	}
	if fs.Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if fs.Changed("drop-dupes") {
		cfg.DropDupes = flags.DropDupes
	}
	if fs.Changed("metrics-addr") {
		cfg.MetricsAddr = flags.MetricsAddr
	}
	if fs.Changed("talk") {
		cfg.Talk = flags.Talk
	}
}

// runSearch searches every graph in cfg.Source and prints a report for each.
// Returns true if every connected graph has a witness.
func runSearch(ctx context.Context, cfg *RunConfig, out io.Writer) (bool, error) {
	opts, err := cfg.SearchOpts()
	if err != nil {
		return false, err
	}

	graphs, err := readSource(cfg.Source)
	if err != nil {
		return false, err
	}

	reg := prometheus.NewRegistry()
	metrics := libtubes.NewMetrics(reg)
	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	stream := libtubes.StreamGraphs(graphs)
	if cfg.DropDupes {
		stream = stream.DropDupes()
	}
	reports := stream.Search(ctx, opts, metrics)

	printOpts := gotubes.PrintOpts{
		Walk: cfg.Talk,
	}

	startTime := time.Now()
	allFound := true
	for rep := range reports.Outlet {
		if !writeReport(out, rep, len(graphs), cfg, printOpts) {
			allFound = false
		}
	}
	klog.V(1).Infof("searched %d graphs in %v", len(graphs), time.Since(startTime))

	if err = ctx.Err(); err != nil {
		return false, err
	}

	writeSummary(out, allFound)
	return allFound, nil
}

func readSource(pathname string) ([]*libtubes.Graph, error) {
	file, err := os.Open(pathname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	graphs, err := libtubes.ReadGraphs(file)
	if err != nil {
		return nil, errors.WithMessage(err, pathname)
	}
	return graphs, nil
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			klog.Errorf("metrics server: %v", err)
		}
	}()
	klog.Infof("serving metrics at http://%s/metrics", addr)
	return srv
}
