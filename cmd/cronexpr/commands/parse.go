// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/bureau-foundation/cronexpr/cmd/cronexpr/cli"
	"github.com/bureau-foundation/cronexpr/lib/codec"
	"github.com/bureau-foundation/cronexpr/lib/cron"
)

type parseParams struct {
	cli.JSONOutput
	CBOR bool `json:"-" flag:"cbor" desc:"output as deterministic CBOR"`
}

// expressionDocument is the structured rendering of an expression used
// by --json and --cbor. Fields is keyed by field name and omitted for
// reboot expressions.
type expressionDocument struct {
	Expression cron.Expression   `json:"expression"`
	Reboot     bool              `json:"reboot"`
	Fields     map[string]string `json:"fields,omitempty"`
}

func newExpressionDocument(expression cron.Expression) expressionDocument {
	document := expressionDocument{
		Expression: expression,
		Reboot:     expression.IsReboot(),
	}
	if !expression.IsReboot() {
		document.Fields = make(map[string]string, cron.FieldCount)
		for _, value := range expression.Fields() {
			document.Fields[value.Name().String()] = value.String()
		}
	}
	return document
}

func (a *app) parseCommand() *cli.Command {
	var params parseParams

	return &cli.Command{
		Name:    "parse",
		Summary: "Print the canonical form of an expression",
		Description: `Parse an expression and print its canonical form: the seven field
tokens separated by single spaces, with month and weekday names in
lower case. Keywords are expanded; @reboot prints as itself.

The expression may be given as one quoted argument or as separate
arguments.`,
		Usage:  "cronexpr parse <expression> [flags]",
		Params: func() any { return &params },
		Run: func(args []string) error {
			if params.OutputJSON && params.CBOR {
				return fmt.Errorf("--json and --cbor are mutually exclusive")
			}
			input, err := joinExpression(args)
			if err != nil {
				return err
			}
			cfg, logger, err := a.settings("parse")
			if err != nil {
				return err
			}

			expression, err := cfg.CronConfig().Parse(input)
			if err != nil {
				return err
			}
			logger.Debug("expression parsed", "input", input, "canonical", expression.String())

			return a.writeExpression(expression, params.JSONOutput, params.CBOR)
		},
		Examples: []cli.Example{
			{
				Description: "Expand a keyword",
				Command:     "cronexpr parse @weekly",
			},
			{
				Description: "Normalize names and whitespace",
				Command:     "cronexpr parse '0  30 9 * JAN-MAR Mon-Fri  *'",
			},
			{
				Description: "Encode as CBOR and dump the bytes",
				Command:     "cronexpr parse @daily --cbor | xxd",
			},
		},
	}
}

// writeExpression prints expression as text, JSON or CBOR.
func (a *app) writeExpression(expression cron.Expression, jsonOutput cli.JSONOutput, cborOutput bool) error {
	document := newExpressionDocument(expression)
	if done, err := jsonOutput.EmitJSON(a.stdout, document); done {
		return err
	}
	if cborOutput {
		return writeCBOR(a.stdout, document)
	}
	_, err := fmt.Fprintln(a.stdout, expression.String())
	return err
}

func writeCBOR(w io.Writer, value any) error {
	if err := codec.NewEncoder(w).Encode(value); err != nil {
		return fmt.Errorf("encoding CBOR: %w", err)
	}
	return nil
}
