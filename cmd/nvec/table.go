package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-nvec/numeric"
)

func newTableCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the kind promotion matrix",
		Long: `Prints the result kind for every pair of component kinds.
A dash marks a pair without a promotion rule. With --list the rules are
printed one per line in table order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return printRules(cmd.OutOrStdout())
			}
			return printMatrix(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list rules instead of the matrix")
	return cmd
}

func printMatrix(w io.Writer) error {
	kinds := numeric.Kinds()
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "\t")
	for _, k := range kinds {
		fmt.Fprintf(tw, "%s\t", k)
	}
	fmt.Fprintln(tw)

	for _, a := range kinds {
		fmt.Fprintf(tw, "%s\t", a)
		for _, b := range kinds {
			r, err := numeric.Promote(a, b)
			if err != nil {
				fmt.Fprint(tw, "-\t")
				continue
			}
			fmt.Fprintf(tw, "%s\t", r)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func printRules(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rules := numeric.Rules()
	for _, r := range rules {
		fmt.Fprintf(tw, "%s\t%s\t-> %s\n", r.A, r.B, r.Result)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d rules\n", len(rules))
	return err
}

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <kind> <kind>",
		Short: "Look up the promoted kind of a pair",
		Example: `  nvec promote i8 u64
  nvec promote float32 int64`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := numeric.ParseKind(args[0])
			if err != nil {
				return err
			}
			b, err := numeric.ParseKind(args[1])
			if err != nil {
				return err
			}
			r, err := numeric.Promote(a, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r)
			return err
		},
	}
}
