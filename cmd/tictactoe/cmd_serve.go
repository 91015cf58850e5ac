package main

import (
	"context"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"tictactoe/internal/server/game"
	httpserver "tictactoe/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless hosts have no browser
}

func runServe(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Server.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("web") {
		cfg.Server.WebDir, _ = flags.GetString("web")
	}
	open, _ := flags.GetBool("open")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	e, _, err := solved(cmd.Context(), reg)
	if err != nil {
		return err
	}
	h := httpserver.NewHandler(e, game.NewManager(), httpserver.Options{
		Logger:       log,
		Gatherer:     reg,
		WebDir:       cfg.Server.WebDir,
		PingInterval: cfg.Server.PingInterval,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	log.Info().Str("addr", cfg.Server.Addr).Str("web", cfg.Server.WebDir).Msg("listening")
	if open {
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := cfg.Server.Addr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host)
		}()
	}

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}
