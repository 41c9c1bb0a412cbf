// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cclust/config"
	"github.com/katalvlaran/cclust/dataio"
	"github.com/katalvlaran/cclust/logutil"
	"github.com/katalvlaran/cclust/search"
	"github.com/katalvlaran/cclust/solution"
)

type runFlags struct {
	configPath string
	traceDir   string
	reportPath string
	logLevel   string
}

type runArgs struct {
	dataPath        string
	constraintsPath string
	seed            int64
	k               int
	algo            search.Algorithm
}

func parseArgs(args []string) (runArgs, error) {
	seed, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return runArgs{}, fmt.Errorf("seed %q: %w", args[2], err)
	}
	k, err := strconv.Atoi(args[3])
	if err != nil {
		return runArgs{}, fmt.Errorf("number of clusters %q: %w", args[3], err)
	}
	algo, err := search.ParseAlgorithm(args[4])
	if err != nil {
		return runArgs{}, fmt.Errorf("search type %q: %w", args[4], err)
	}

	return runArgs{
		dataPath:        args[0],
		constraintsPath: args[1],
		seed:            seed,
		k:               k,
		algo:            algo,
	}, nil
}

func algorithmNames() string {
	names := make([]string, 0, len(search.Algorithms()))
	for _, a := range search.Algorithms() {
		names = append(names, a.String())
	}

	return strings.Join(names, ", ")
}

func newRootCmd(out io.Writer) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "cclust data_file constraints_file seed number_of_clusters search_type",
		Short: "Constrained clustering with local search and metaheuristics",
		Long:  "Search types: " + algorithmNames(),
		Args:  cobra.ExactArgs(5),
		// Usage is noise for runtime failures such as a missing file.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ra, err := parseArgs(args)
			if err != nil {
				return err
			}
			return run(out, ra, flags)
		},
	}
	cmd.SetOut(out)
	cmd.Flags().StringVar(&flags.configPath, "config", "", "TOML file with search and log settings")
	cmd.Flags().StringVar(&flags.traceDir, "trace-dir", "", "directory for the .npy fitness trace")
	cmd.Flags().StringVar(&flags.reportPath, "report", "", "file for the MessagePack run report")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level, overrides the config file")

	return cmd
}

func run(out io.Writer, ra runArgs, flags runFlags) error {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return err
		}
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	logger, closeLog, err := logutil.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	points, err := dataio.LoadPoints(ra.dataPath)
	if err != nil {
		return err
	}
	constraints, err := dataio.LoadConstraints(ra.constraintsPath, points.Len())
	if err != nil {
		return err
	}
	p, err := solution.NewProblem(points, constraints, ra.k)
	if err != nil {
		return fmt.Errorf("problem: %w", err)
	}
	logger.Info("problem loaded",
		zap.Int("points", p.N()),
		zap.Int("constraints", constraints.Len()),
		zap.Int("clusters", p.K()),
		zap.Stringer("algorithm", ra.algo),
		zap.Int64("seed", ra.seed))

	opts := append(cfg.Search.Options(), search.WithLogger(logger))
	started := time.Now()
	res, err := search.Run(p, rand.New(rand.NewSource(ra.seed)), ra.algo, opts...)
	elapsed := time.Since(started)
	if err != nil {
		return fmt.Errorf("%s: %w", ra.algo, err)
	}

	best := res.Best
	fmt.Fprintf(out, "Global cluster distance: %f\n", best.GlobalClusterDistance())
	fmt.Fprintf(out, "Infeasibility: %d\n", best.Infeasibility())
	fmt.Fprintf(out, "Fitness: %f\n", best.Fitness())
	fmt.Fprintf(out, "Lambda: %f\n", best.Lambda())
	fmt.Fprintf(out, "Elapsed: %.6f s\n", elapsed.Seconds())

	if flags.traceDir != "" && len(res.Trace) > 0 {
		path := dataio.TraceFileName(flags.traceDir, ra.algo.String(), started)
		if err = dataio.SaveTrace(path, res.Trace); err != nil {
			return err
		}
		logger.Info("trace written", zap.String("path", path), zap.Int("entries", len(res.Trace)))
	}
	if flags.reportPath != "" {
		rep := dataio.NewReport(res, ra.seed, started, elapsed)
		if err = dataio.SaveReport(flags.reportPath, rep); err != nil {
			return err
		}
		logger.Info("report written", zap.String("path", flags.reportPath), zap.String("run_id", rep.RunID))
	}

	return nil
}
