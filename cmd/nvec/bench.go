package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-nvec/internal/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		configPath string
		kinds      []string
		sizes      []int
		runs       int
		iterations int
		seed       int64
		asYAML     bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time elementwise multiplication across kinds and sizes",
		Long: `Times ElementMul on vectors filled with two random int32 values cast
into each kind. Settings come from the defaults, then --config, then
explicit flags.`,
		Example: `  nvec bench
  nvec bench --kinds i32,f64 --sizes 3,16 --runs 5
  nvec bench --config bench.yaml --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []bench.BenchOption
			flags := cmd.Flags()
			if flags.Changed("kinds") {
				opts = append(opts, bench.WithKinds(kinds...))
			}
			if flags.Changed("sizes") {
				opts = append(opts, bench.WithSizes(sizes...))
			}
			if flags.Changed("runs") {
				opts = append(opts, bench.WithRuns(runs))
			}
			if flags.Changed("iterations") {
				opts = append(opts, bench.WithIterations(iterations))
			}
			if flags.Changed("seed") {
				opts = append(opts, bench.WithSeed(seed))
			}

			cfg := bench.ApplyOptions(opts...)
			if configPath != "" {
				var err error
				if cfg, err = bench.LoadConfig(configPath, opts...); err != nil {
					return err
				}
			}

			rep, err := bench.Run(cmd.Context(), cfg, a.logger)
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}
			if asYAML {
				return bench.WriteYAML(cmd.OutOrStdout(), rep)
			}
			return bench.WriteTable(cmd.OutOrStdout(), rep)
		},
	}

	def := bench.DefaultConfig()
	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.StringSliceVar(&kinds, "kinds", def.Kinds, "component kinds to measure")
	f.IntSliceVar(&sizes, "sizes", def.Sizes, "vector lengths to measure")
	f.IntVar(&runs, "runs", def.Runs, "number of random operand draws")
	f.IntVar(&iterations, "iterations", def.Iterations, "timed calls per measurement")
	f.Int64Var(&seed, "seed", 0, "operand seed (0 picks one)")
	f.BoolVar(&asYAML, "yaml", false, "print the full report as YAML")
	return cmd
}
