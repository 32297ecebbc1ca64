package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-nvec/internal/propcheck"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		seed    int64
		rounds  int
		limit   int64
		workers int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify arithmetic properties for every kind pair",
		Long: `Checks promotion symmetry and reflexivity, componentwise agreement with
scalar arithmetic, commutativity of add, elementwise multiply and dot,
anti-commutativity of subtraction and cross product, scalar order
independence and the magnitude alias on random operands. Pairs without a
promotion rule must be rejected by every operation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := propcheck.ApplyOptions(
				propcheck.WithSeed(seed),
				propcheck.WithRounds(rounds),
				propcheck.WithLimit(limit),
				propcheck.WithWorkers(workers),
			)
			rep, err := propcheck.Run(cmd.Context(), cfg, a.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range rep.Failures {
				fmt.Fprintf(out, "FAIL %s\n", f)
			}
			fmt.Fprintf(out, "%d pairs (%d without promotion), %d checks, %d failures\n",
				rep.Pairs, rep.Unsupported, rep.Checks, len(rep.Failures))
			if !rep.OK() {
				return fmt.Errorf("%d property checks failed", len(rep.Failures))
			}
			return nil
		},
	}

	def := propcheck.DefaultConfig()
	f := cmd.Flags()
	f.Int64Var(&seed, "seed", def.Seed, "operand seed")
	f.IntVar(&rounds, "rounds", def.Rounds, "operand draws per pair")
	f.Int64Var(&limit, "limit", def.Limit, "bound on generated component magnitudes")
	f.IntVar(&workers, "workers", def.Workers, "pairs checked concurrently")
	return cmd
}
