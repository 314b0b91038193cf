// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/cronexpr/cmd/cronexpr/cli"
	"github.com/bureau-foundation/cronexpr/lib/version"
)

func (a *app) versionCommand() *cli.Command {
	var params cli.JSONOutput

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Params:  func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("version takes no arguments (got %q)", args[0])
			}
			if done, err := params.EmitJSON(a.stdout, version.Current()); done {
				return err
			}
			fmt.Fprintf(a.stdout, "cronexpr %s\n", version.Full())
			return nil
		},
	}
}
