package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-nvec/nvec"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every vector operation on small sample vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	a := nvec.New3([3]int32{1, 2, 3})
	b := nvec.New3([3]int32{3, 2, 1})
	c := nvec.New3([3]float64{2.0, 0.2, -3.2})

	magA, err := a.Mag()
	if err != nil {
		return err
	}
	magB, err := b.Magnitude()
	if err != nil {
		return err
	}
	dot, err := a.Dot(b)
	if err != nil {
		return err
	}
	cross, err := nvec.Cross(a, b)
	if err != nil {
		return err
	}
	scaled, err := nvec.MulScalar(a, float32(-2))
	if err != nil {
		return err
	}
	ca, err := nvec.Cross(c, a)
	if err != nil {
		return err
	}
	negCA, err := nvec.MulScalar(ca, int32(-1))
	if err != nil {
		return err
	}
	ac, err := nvec.Cross(a, c)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "A = %s\n", a)
	fmt.Fprintf(w, "B = %s\n", b)
	fmt.Fprintf(w, "C = %s\n", c)
	fmt.Fprintf(w, "|A| = %v\n", magA)
	fmt.Fprintf(w, "|B| = %v\n", magB)
	fmt.Fprintf(w, "A . B = %s\n", dot)
	fmt.Fprintf(w, "A x B = %s\n", cross)
	fmt.Fprintf(w, "A * -2 = %s\n", scaled)
	fmt.Fprintf(w, "-(C x A) = %s\n", negCA)
	_, err = fmt.Fprintf(w, "A x C = %s\n", ac)
	return err
}
