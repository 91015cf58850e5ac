package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tictactoe/internal/report"
)

func runReport(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Report.Format, _ = flags.GetString("format")
	}
	if flags.Changed("out") {
		cfg.Report.Output, _ = flags.GetString("out")
	}
	if flags.Changed("package") {
		cfg.Report.Package, _ = flags.GetString("package")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	e, _, err := solved(cmd.Context(), nil)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		if cfg.Report.Format == "go" {
			return report.WriteGoSource(w, e.Table(), cfg.Report.Package)
		}
		return report.WriteText(w, e.Table())
	}
	if cfg.Report.Output == "" {
		err = write(cmd.OutOrStdout())
	} else {
		err = writeFile(cfg.Report.Output, write)
	}
	if err != nil {
		return err
	}

	s := report.Summarize(e.Table())
	log.Info().
		Str("format", cfg.Report.Format).
		Str("out", cfg.Report.Output).
		Int("positions", s.Positions).
		Int("x_wins", s.XWins).
		Int("draws", s.Draws).
		Int("x_loses", s.XLoses).
		Msg("report written")
	return nil
}

// writeFile creates path, runs write on it and reports the first error of
// the write and the close.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create report")
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
