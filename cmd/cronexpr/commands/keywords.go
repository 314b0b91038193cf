// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/bureau-foundation/cronexpr/cmd/cronexpr/cli"
	"github.com/bureau-foundation/cronexpr/lib/config"
	"github.com/bureau-foundation/cronexpr/lib/cron"
)

type keywordsParams struct {
	cli.JSONOutput
}

// keywordEntry is one row of the keyword listing. Source is "built-in",
// "config" for keywords the configuration adds, or "override" for
// built-in keywords the configuration redefines.
type keywordEntry struct {
	Keyword   string `json:"keyword"`
	Expansion string `json:"expansion"`
	Source    string `json:"source"`
}

// keywordTable lists every keyword the parser accepts under cfg, sorted
// by name, followed by the reboot keyword.
func keywordTable(cfg *config.Config) []keywordEntry {
	builtin := cron.Keywords()
	table := cfg.CronConfig().Keywords

	entries := make([]keywordEntry, 0, len(table)+1)
	for _, keyword := range slices.Sorted(maps.Keys(table)) {
		source := "built-in"
		if _, configured := cfg.Keywords[keyword]; configured {
			source = "config"
			if _, shadows := builtin[keyword]; shadows {
				source = "override"
			}
		}
		entries = append(entries, keywordEntry{
			Keyword:   keyword,
			Expansion: table[keyword],
			Source:    source,
		})
	}
	return append(entries, keywordEntry{
		Keyword: cron.RebootKeyword,
		Source:  "built-in",
	})
}

func (a *app) keywordsCommand() *cli.Command {
	var params keywordsParams

	return &cli.Command{
		Name:    "keywords",
		Summary: "List reserved keywords and their expansions",
		Description: `List every reserved keyword accepted by parse, match and explain:
the built-in table merged with keywords from the configuration file.
@reboot is listed last; it has no expansion.`,
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("keywords takes no arguments (got %q)", args[0])
			}
			cfg, _, err := a.settings("keywords")
			if err != nil {
				return err
			}

			entries := keywordTable(cfg)
			if done, err := params.EmitJSON(a.stdout, entries); done {
				return err
			}

			tw := tabwriter.NewWriter(a.stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "KEYWORD\tEXPANSION\tSOURCE")
			for _, entry := range entries {
				expansion := entry.Expansion
				if entry.Keyword == cron.RebootKeyword {
					expansion = "(run once at startup)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Keyword, expansion, entry.Source)
			}
			return tw.Flush()
		},
	}
}
