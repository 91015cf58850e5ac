package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"lukechampine.com/frand"

	"tictactoe/internal/selfplay"
)

func runSelfplay(cmd *cobra.Command, args []string) error {
	games, _ := cmd.Flags().GetInt("games")
	if games <= 0 {
		return errors.Errorf("--games must be positive, got %d", games)
	}

	e, _, err := solved(cmd.Context(), nil)
	if err != nil {
		return err
	}
	t := selfplay.Run(e, games, frand.New(), log)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "games: %d  x wins: %d  o wins: %d  draws: %d\n", t.Games, t.XWins, t.OWins, t.Draws)
	fmt.Fprintf(out, "distinct lines: %d  plies: %d\n", t.Unique, t.Plies)
	return nil
}
