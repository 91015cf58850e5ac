package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tictactoe/internal/play"
	"tictactoe/internal/tictactoe"
)

func runPlay(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("vs-engine") {
		cfg.Play.VsEngine, _ = flags.GetBool("vs-engine")
	}
	if flags.Changed("engine-side") {
		cfg.Play.EngineSide, _ = flags.GetString("engine-side")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []play.Option{play.WithLogger(log)}
	if cfg.Play.VsEngine {
		e, _, err := solved(cmd.Context(), nil)
		if err != nil {
			return err
		}
		side := tictactoe.O
		if strings.EqualFold(cfg.Play.EngineSide, "x") {
			side = tictactoe.X
		}
		opts = append(opts, play.WithEngine(e, side))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Moves are a file and a rank, like b2.")
	_, err := play.NewGame(cmd.InOrStdin(), cmd.OutOrStdout(), opts...).Run()
	return err
}
