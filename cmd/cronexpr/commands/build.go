// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/cronexpr/cmd/cronexpr/cli"
	"github.com/bureau-foundation/cronexpr/lib/cron/field"
)

type buildParams struct {
	cli.JSONOutput
	CBOR    bool   `json:"-" flag:"cbor" desc:"output as deterministic CBOR"`
	Second  string `json:"second"  flag:"second"  desc:"second token (default: any)"`
	Minute  string `json:"minute"  flag:"minute"  desc:"minute token (default: any)"`
	Hour    string `json:"hour"    flag:"hour"    desc:"hour token (default: any)"`
	Day     string `json:"day"     flag:"day"     desc:"day-of-month token (default: any)"`
	Month   string `json:"month"   flag:"month"   desc:"month token (default: any)"`
	Weekday string `json:"weekday" flag:"weekday" desc:"weekday token (default: any)"`
	Year    string `json:"year"    flag:"year"    desc:"year token (default: any)"`
}

// values returns the tokens that were given, keyed by field name.
func (p *buildParams) values() map[string]string {
	tokens := [field.Count]string{
		field.Second:  p.Second,
		field.Minute:  p.Minute,
		field.Hour:    p.Hour,
		field.Day:     p.Day,
		field.Month:   p.Month,
		field.Weekday: p.Weekday,
		field.Year:    p.Year,
	}
	values := make(map[string]string, field.Count)
	for _, name := range field.Names() {
		if tokens[name] != "" {
			values[name.String()] = tokens[name]
		}
	}
	return values
}

func (a *app) buildCommand() *cli.Command {
	var params buildParams

	return &cli.Command{
		Name:    "build",
		Summary: "Build an expression from named fields",
		Description: `Build an expression from per-field tokens and print its canonical
form. Fields that are not given take the configured default token,
"*" unless the configuration says otherwise.`,
		Usage:  "cronexpr build [--second T] [--minute T] ... [--year T] [flags]",
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("build takes no arguments (got %q); give fields as flags", args[0])
			}
			if params.OutputJSON && params.CBOR {
				return fmt.Errorf("--json and --cbor are mutually exclusive")
			}
			cfg, logger, err := a.settings("build")
			if err != nil {
				return err
			}

			values := params.values()
			expression, err := cfg.CronConfig().FromFields(values)
			if err != nil {
				return err
			}
			logger.Debug("expression built", "given", len(values), "canonical", expression.String())

			return a.writeExpression(expression, params.JSONOutput, params.CBOR)
		},
		Examples: []cli.Example{
			{
				Description: "Every weekday at 09:00:00",
				Command:     "cronexpr build --second 0 --minute 0 --hour 9 --weekday mon-fri",
			},
		},
	}
}
