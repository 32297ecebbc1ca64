// Command nvec inspects the promotion table and exercises the vector
// library.
//
// Usage:
//
//	nvec <command> [flags]
//
// Examples:
//
//	nvec table
//	nvec promote i8 u64
//	nvec demo
//	nvec bench --sizes 3,8 --kinds i32,f64
//	nvec bench --config bench.yaml
//	nvec check --rounds 32
//	nvec info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "nvec",
		Short: "Fixed-size numeric vectors with kind promotion",
		Long: `nvec prints the kind promotion table used by vector arithmetic,
runs a short demonstration of every operation, times elementwise
multiplication and checks the algebraic properties across all kind pairs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newTableCmd(),
		newPromoteCmd(),
		newDemoCmd(),
		newBenchCmd(a),
		newCheckCmd(a),
		newInfoCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
