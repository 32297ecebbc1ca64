package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-nvec/nvec"
)

var simdLevels = []cpu.SIMDLevel{
	cpu.SIMDSSE2, cpu.SIMDAVX, cpu.SIMDAVX2, cpu.SIMDAVX512, cpu.SIMDNEON,
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the CPU features used by the float64 block kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printInfo(cmd.OutOrStdout(), cpu.DetectFeatures())
		},
	}
}

func printInfo(w io.Writer, f cpu.Features) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "architecture\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "max dimension\t%d\n", nvec.MaxDim)
	for _, level := range simdLevels {
		fmt.Fprintf(tw, "%s\t%s\n", level, yesNo(cpu.Supports(f, level)))
	}
	fmt.Fprintf(tw, "best\t%s\n", bestLevel(f))
	return tw.Flush()
}

func bestLevel(f cpu.Features) cpu.SIMDLevel {
	best := cpu.SIMDNone
	for _, level := range simdLevels {
		if cpu.Supports(f, level) {
			best = level
		}
	}
	return best
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
