// Package config loads the YAML settings shared by the tictactoe commands.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Solver SolverConfig `yaml:"solver"`
	Server ServerConfig `yaml:"server"`
	Play   PlayConfig   `yaml:"play"`
	Report ReportConfig `yaml:"report"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error
	Pretty bool   `yaml:"pretty"` // console writer instead of JSON
}

type SolverConfig struct {
	Parallel bool `yaml:"parallel"`
	Workers  int  `yaml:"workers"` // 0 = NumCPU
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	WebDir       string        `yaml:"web_dir"`
	PingInterval time.Duration `yaml:"ping_interval"`
}

type PlayConfig struct {
	VsEngine   bool   `yaml:"vs_engine"`
	EngineSide string `yaml:"engine_side"` // "x" or "o"
}

type ReportConfig struct {
	Format  string `yaml:"format"` // "text" or "go"
	Package string `yaml:"package"`
	Output  string `yaml:"output"` // empty = stdout
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Solver: SolverConfig{},
		Server: ServerConfig{
			Addr:         ":2888",
			PingInterval: 30 * time.Second,
		},
		Play: PlayConfig{
			EngineSide: "o",
		},
		Report: ReportConfig{
			Format:  "text",
			Package: "lookup",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return errors.Errorf("log.level %q", c.Log.Level)
	}
	if c.Solver.Workers < 0 {
		return errors.Errorf("solver.workers must be >= 0, got %d", c.Solver.Workers)
	}
	if c.Server.PingInterval <= 0 {
		return errors.Errorf("server.ping_interval must be positive, got %s", c.Server.PingInterval)
	}
	switch strings.ToLower(c.Play.EngineSide) {
	case "x", "o":
	default:
		return errors.Errorf("play.engine_side %q", c.Play.EngineSide)
	}
	switch c.Report.Format {
	case "text", "go":
	default:
		return errors.Errorf("report.format %q", c.Report.Format)
	}
	return nil
}
