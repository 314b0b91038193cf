// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the cronexpr command tree. Every command
// shares one [app]: the output streams, the clock "now" is read from,
// and the root-level --config and --log-level options.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/cronexpr/cmd/cronexpr/cli"
	"github.com/bureau-foundation/cronexpr/lib/clock"
	"github.com/bureau-foundation/cronexpr/lib/config"
)

// app is the state shared by every command in one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	clock  clock.Clock

	// Root flags.
	configPath string
	logLevel   string

	// Loaded on first use.
	config *config.Config
}

// Root builds and returns the complete cronexpr command tree, writing
// to the process's standard streams and reading the system clock.
func Root() *cli.Command {
	return (&app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		clock:  clock.Real(),
	}).root()
}

func (a *app) root() *cli.Command {
	return &cli.Command{
		Name: "cronexpr",
		Description: `cronexpr: parse and match 7-field cron expressions.

An expression has seven whitespace-separated fields, in order:
second, minute, hour, day of month, month, weekday (0 is Sunday, 7 is
accepted as Sunday too) and year. Reserved keywords such as @daily
expand to a full expression; @reboot marks a run-once-at-startup job
and has no calendar times.

Configuration is read from --config, else from the file named by
CRONEXPR_CONFIG, else built-in defaults apply.`,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("cronexpr", pflag.ContinueOnError)
			flagSet.StringVar(&a.configPath, "config", "", "configuration file (YAML or JSONC)")
			flagSet.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
			return flagSet
		},
		Subcommands: []*cli.Command{
			a.parseCommand(),
			a.buildCommand(),
			a.matchCommand(),
			a.explainCommand(),
			a.keywordsCommand(),
			a.versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Show the canonical form of a keyword",
				Command:     "cronexpr parse @weekly",
			},
			{
				Description: "Build an expression from named fields",
				Command:     "cronexpr build --hour 9 --weekday mon-fri",
			},
			{
				Description: "Check whether noon on 1 March matches (exit status 1 if not)",
				Command:     "cronexpr match '0 0 12 * * * *' --at 2026-03-01T12:00:00Z",
			},
			{
				Description: "List the values each field accepts",
				Command:     "cronexpr explain '0 */15 9-17 * * mon-fri *'",
			},
		},
	}
}

// settings loads the configuration (once per invocation) and builds a
// logger scoped to the named command.
func (a *app) settings(command string) (*config.Config, *slog.Logger, error) {
	level, err := cli.ParseLevel(a.logLevel)
	if err != nil {
		return nil, nil, err
	}
	logger := cli.NewCommandLogger(a.stderr, level).With("command", command)

	if a.config == nil {
		cfg, source, err := a.loadConfig()
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("configuration loaded",
			"source", source,
			"environment", cfg.Environment,
			"location", cfg.Location,
			"keywords", len(cfg.Keywords),
		)
		a.config = cfg
	}
	return a.config, logger, nil
}

// loadConfig resolves the configuration source: --config, then
// CRONEXPR_CONFIG, then built-in defaults.
func (a *app) loadConfig() (*config.Config, string, error) {
	if a.configPath != "" {
		cfg, err := config.LoadFile(a.configPath)
		return cfg, a.configPath, err
	}
	if path := os.Getenv(config.EnvironmentVariable); path != "" {
		cfg, err := config.Load()
		return cfg, path, err
	}
	return config.Default(), "defaults", nil
}

// joinExpression reassembles an expression passed as one or several
// positional arguments, so both quoted and unquoted forms work.
func joinExpression(args []string) (string, error) {
	expression := strings.Join(args, " ")
	if strings.TrimSpace(expression) == "" {
		return "", fmt.Errorf("expression required")
	}
	return expression, nil
}
