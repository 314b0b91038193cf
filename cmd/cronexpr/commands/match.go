// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"time"

	"github.com/bureau-foundation/cronexpr/cmd/cronexpr/cli"
	"github.com/bureau-foundation/cronexpr/lib/cron"
	"github.com/bureau-foundation/cronexpr/lib/cron/field"
)

type matchParams struct {
	cli.JSONOutput
	At string `json:"at" flag:"at" desc:"time to test: RFC 3339, or 2006-01-02T15:04:05 in the configured location (default: now)"`
}

// matchResult is the --json output of match.
type matchResult struct {
	Expression cron.Expression `json:"expression"`
	Time       time.Time       `json:"time"`
	Matched    bool            `json:"matched"`
	Components map[string]int  `json:"components"`
}

// localLayouts are accepted for --at values without a zone offset.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// resolveTime turns the --at value into the instant to test. A value
// with an offset keeps it; matching happens in the time's own zone.
// Values without one are read in location, as is "now".
func (a *app) resolveTime(at string, location *time.Location) (time.Time, error) {
	if at == "" {
		return a.clock.Now().In(location), nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, at); err == nil {
		return parsed, nil
	}
	for _, layout := range localLayouts {
		if parsed, err := time.ParseInLocation(layout, at, location); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --at %q: want RFC 3339 (2006-01-02T15:04:05Z07:00) or 2006-01-02T15:04:05", at)
}

func (a *app) matchCommand() *cli.Command {
	var params matchParams

	return &cli.Command{
		Name:    "match",
		Summary: "Test whether a time matches an expression",
		Description: `Print "match" if every field of the expression accepts the matching
component of the time, and "no match" otherwise. The exit status is 0
on a match and 1 otherwise, so match can drive shell conditionals.

Sub-second precision is ignored. @reboot has no calendar times and is
rejected.`,
		Usage:  "cronexpr match <expression> [--at TIME] [flags]",
		Params: func() any { return &params },
		Run: func(args []string) error {
			input, err := joinExpression(args)
			if err != nil {
				return err
			}
			cfg, logger, err := a.settings("match")
			if err != nil {
				return err
			}
			location, err := cfg.TimeLocation()
			if err != nil {
				return err
			}

			expression, err := cfg.CronConfig().Parse(input)
			if err != nil {
				return err
			}
			if expression.IsReboot() {
				return fmt.Errorf("%s runs once at startup and has no calendar times to match", cron.RebootKeyword)
			}

			when, err := a.resolveTime(params.At, location)
			if err != nil {
				return err
			}

			matched := expression.Matches(when)
			components := cron.Decompose(when)
			logger.Debug("match evaluated",
				"expression", expression.String(),
				"time", when.Format(time.RFC3339),
				"components", components,
				"matched", matched,
			)

			result := matchResult{
				Expression: expression,
				Time:       when,
				Matched:    matched,
				Components: make(map[string]int, field.Count),
			}
			for _, name := range field.Names() {
				result.Components[name.String()] = components[name]
			}

			if done, err := params.EmitJSON(a.stdout, result); done {
				if err != nil {
					return err
				}
			} else if matched {
				fmt.Fprintln(a.stdout, "match")
			} else {
				fmt.Fprintln(a.stdout, "no match")
			}

			if !matched {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Does noon UTC on 1 March 2026 match?",
				Command:     "cronexpr match '0 0 12 * * * *' --at 2026-03-01T12:00:00Z",
			},
			{
				Description: "Gate a script on the current time",
				Command:     "cronexpr match '* * 9-17 * * mon-fri *' && ./business-hours-task",
			},
		},
	}
}
