// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/cronexpr/cmd/cronexpr/cli"
	"github.com/bureau-foundation/cronexpr/lib/cron"
)

type explainParams struct {
	cli.JSONOutput
}

// explanation is the per-field breakdown printed by explain.
type explanation struct {
	Expression cron.Expression `json:"expression"`
	Reboot     bool            `json:"reboot"`
	Fields     []fieldSummary  `json:"fields"`
}

type fieldSummary struct {
	Field   string `json:"field"`
	Token   string `json:"token"`
	Any     bool   `json:"any"`
	Values  []int  `json:"values"`
	Allowed string `json:"allowed"`
}

func explain(expression cron.Expression) explanation {
	result := explanation{
		Expression: expression,
		Reboot:     expression.IsReboot(),
	}
	if expression.IsReboot() {
		return result
	}
	for _, value := range expression.Fields() {
		summary := fieldSummary{
			Field:  value.Name().String(),
			Token:  value.String(),
			Any:    value.IsAny(),
			Values: value.Values(),
		}
		if summary.Any {
			summary.Allowed = "any"
		} else {
			summary.Allowed = compressRanges(summary.Values)
		}
		result.Fields = append(result.Fields, summary)
	}
	return result
}

// compressRanges renders ascending values as a comma list in which
// runs of three or more consecutive values collapse to "first-last".
func compressRanges(values []int) string {
	var parts []string
	for start := 0; start < len(values); {
		end := start
		for end+1 < len(values) && values[end+1] == values[end]+1 {
			end++
		}
		switch {
		case end-start >= 2:
			parts = append(parts, strconv.Itoa(values[start])+"-"+strconv.Itoa(values[end]))
		case end > start:
			parts = append(parts, strconv.Itoa(values[start]), strconv.Itoa(values[end]))
		default:
			parts = append(parts, strconv.Itoa(values[start]))
		}
		start = end + 1
	}
	return strings.Join(parts, ",")
}

func (a *app) explainCommand() *cli.Command {
	var params explainParams

	return &cli.Command{
		Name:    "explain",
		Summary: "List the values each field accepts",
		Description: `Print one row per field: its name, the token as written, and the
values it accepts. Runs of consecutive values are shown as ranges.
Weekdays are numbered 0 (Sunday) to 6 (Saturday).

On a terminal the table is styled; piped output is plain text.`,
		Usage:  "cronexpr explain <expression> [flags]",
		Params: func() any { return &params },
		Run: func(args []string) error {
			input, err := joinExpression(args)
			if err != nil {
				return err
			}
			cfg, logger, err := a.settings("explain")
			if err != nil {
				return err
			}

			expression, err := cfg.CronConfig().Parse(input)
			if err != nil {
				return err
			}
			logger.Debug("explaining expression", "canonical", expression.String())

			result := explain(expression)
			if done, err := params.EmitJSON(a.stdout, result); done {
				return err
			}

			var theme *Theme
			if cli.IsTerminal(a.stdout) {
				theme = &DefaultTheme
			}
			return renderExplanation(a.stdout, result, theme)
		},
		Examples: []cli.Example{
			{
				Description: "Business hours every quarter hour",
				Command:     "cronexpr explain '0 */15 9-17 * * mon-fri *'",
			},
		},
	}
}

// renderExplanation writes result as a table. A nil theme produces
// plain tab-aligned text.
func renderExplanation(w io.Writer, result explanation, theme *Theme) error {
	if result.Reboot {
		_, err := fmt.Fprintf(w, "%s: runs once at startup; no calendar fields\n", cron.RebootKeyword)
		return err
	}
	if theme == nil {
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "FIELD\tTOKEN\tALLOWED")
		for _, row := range result.Fields {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Field, row.Token, row.Allowed)
		}
		return tw.Flush()
	}
	return renderStyledExplanation(w, result, *theme)
}

func renderStyledExplanation(w io.Writer, result explanation, theme Theme) error {
	headers := [3]string{"FIELD", "TOKEN", "ALLOWED"}
	var widths [3]int
	for column, header := range headers {
		widths[column] = lipgloss.Width(header)
	}
	for _, row := range result.Fields {
		widths[0] = max(widths[0], lipgloss.Width(row.Field))
		widths[1] = max(widths[1], lipgloss.Width(row.Token))
		widths[2] = max(widths[2], lipgloss.Width(row.Allowed))
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HeaderForeground)
	borderStyle := lipgloss.NewStyle().
		Foreground(theme.BorderColor)
	nameStyle := lipgloss.NewStyle().
		Foreground(theme.NormalText)
	tokenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.NormalText)
	anyStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText)

	const gap = "   "
	var builder strings.Builder
	for column, header := range headers {
		if column > 0 {
			builder.WriteString(gap)
		}
		builder.WriteString(headerStyle.Width(widths[column]).Render(header))
	}
	builder.WriteString("\n")
	builder.WriteString(borderStyle.Render(strings.Repeat("─", widths[0]+widths[1]+widths[2]+2*len(gap))))
	builder.WriteString("\n")

	for _, row := range result.Fields {
		allowedStyle := nameStyle
		if row.Any {
			allowedStyle = anyStyle
		}
		builder.WriteString(nameStyle.Width(widths[0]).Render(row.Field))
		builder.WriteString(gap)
		builder.WriteString(tokenStyle.Width(widths[1]).Render(row.Token))
		builder.WriteString(gap)
		builder.WriteString(allowedStyle.Render(row.Allowed))
		builder.WriteString("\n")
	}

	_, err := io.WriteString(w, builder.String())
	return err
}
