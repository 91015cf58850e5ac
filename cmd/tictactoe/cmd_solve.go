package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func runSolve(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("parallel") {
		cfg.Solver.Parallel, _ = cmd.Flags().GetBool("parallel")
	}
	if cmd.Flags().Changed("workers") {
		cfg.Solver.Workers, _ = cmd.Flags().GetInt("workers")
	}

	_, res, err := solved(cmd.Context(), nil)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "empty board: %s\n", res.Score)
	fmt.Fprintf(out, "positions:   %d\n", res.Positions)
	fmt.Fprintf(out, "nodes:       %d (%d table hits)\n", res.Nodes, res.Hits)
	fmt.Fprintf(out, "time:        %s\n", res.TimeUsed)
	return nil
}
