package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tictactoe/internal/config"
	"tictactoe/internal/engine"
	"tictactoe/internal/logging"
)

// --- Global Command Variables ---
var (
	configPath string
	logLevel   string

	cfg config.Config
	log zerolog.Logger

	rootCmd = &cobra.Command{
		Use:           "tictactoe",
		Short:         "Exhaustive tic-tac-toe solver",
		Long:          "Solves every reachable 3x3 tic-tac-toe position and serves, prints or plays from the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			log = logging.New(cfg.Log, os.Stderr)
			return nil
		},
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve the game and print the value of the empty board",
		RunE:  runSolve, // cmd_solve.go
	}
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Dump the solved table as text or as Go source",
		RunE:  runReport, // cmd_report.go
	}
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play on the console, against a friend or the engine",
		RunE:  runPlay, // cmd_play.go
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP and websocket API",
		RunE:  runServe, // cmd_serve.go
	}
	selfplayCmd = &cobra.Command{
		Use:   "selfplay",
		Short: "Let the engine play itself",
		RunE:  runSelfplay, // cmd_selfplay.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log.level")

	solveCmd.Flags().Bool("parallel", false, "search the first moves concurrently")
	solveCmd.Flags().Int("workers", 0, "parallel workers (0 = NumCPU)")

	reportCmd.Flags().String("format", "", "text or go")
	reportCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	reportCmd.Flags().String("package", "", "package name for --format go")

	playCmd.Flags().Bool("vs-engine", false, "play against the engine")
	playCmd.Flags().String("engine-side", "", "side the engine plays, x or o")

	serveCmd.Flags().String("addr", "", "listen address")
	serveCmd.Flags().String("web", "", "directory with static files")
	serveCmd.Flags().Bool("open", false, "open the browser once listening")

	selfplayCmd.Flags().Int("games", 100, "games to play")

	rootCmd.AddCommand(solveCmd, reportCmd, playCmd, serveCmd, selfplayCmd)
}

// solved builds an engine and fills its table the way cfg.Solver asks.
func solved(ctx context.Context, reg prometheus.Registerer) (*engine.Engine, engine.SolveResult, error) {
	opts := []engine.Option{engine.WithLogger(log)}
	if reg != nil {
		opts = append(opts, engine.WithMetrics(engine.NewMetrics(reg)))
	}
	e := engine.NewEngine(opts...)
	if !cfg.Solver.Parallel {
		return e, e.Solve(), nil
	}
	res, err := e.SolveParallel(ctx, cfg.Solver.Workers)
	return e, res, err
}
