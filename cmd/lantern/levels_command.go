package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lantern/internal/logging"
)

func newLevelsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Show how flag counts map onto severity thresholds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ctx.verbosity()
			decision := opts.Decide()

			out := cmd.OutOrStdout()
			if decision.Explicit() {
				fmt.Fprintf(out, "Explicit filter overrides the threshold: %s\n", decision.Filter)
				return nil
			}

			rows := make([][]string, 0, 8)
			for delta := -3; delta <= 4; delta++ {
				var quiet, verbose uint
				if delta < 0 {
					quiet = uint(-delta)
				} else {
					verbose = uint(delta)
				}
				resolved := logging.Resolve(quiet, verbose, logging.DefaultVerbosity, "")
				marker := ""
				if quiet == opts.Quiet && verbose == opts.Verbose {
					marker = "<-- current"
				}
				rows = append(rows, []string{
					flagSpelling(quiet, verbose),
					resolved.Threshold.String(),
					marker,
				})
			}

			fmt.Fprintln(out, renderTable([]string{"Flags", "Threshold", ""}, rows))
			fmt.Fprintf(out, "Resolved threshold: %s\n", decision.Threshold)
			return nil
		},
	}
}

func flagSpelling(quiet, verbose uint) string {
	switch {
	case quiet > 0:
		return "-" + strings.Repeat("q", int(quiet))
	case verbose > 0:
		return "-" + strings.Repeat("v", int(verbose))
	default:
		return "(none)"
	}
}
