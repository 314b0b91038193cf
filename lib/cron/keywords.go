// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"maps"

	"github.com/bureau-foundation/cronexpr/lib/cron/field"
)

// FieldCount is the number of whitespace-separated tokens in a cron
// expression after keyword expansion.
const FieldCount = field.Count

// RebootKeyword marks an expression that runs once at startup. It is
// not a reserved keyword: it has no 7-field expansion.
const RebootKeyword = "@reboot"

// defaultKeywords maps each reserved keyword to its expansion. Never
// written after initialization; callers get copies from Keywords.
var defaultKeywords = map[string]string{
	"@yearly":   "0 0 0 1 1 * *",
	"@annually": "0 0 0 1 1 * *",
	"@monthly":  "0 0 0 1 * * *",
	"@weekly":   "0 0 0 * * 0 *",
	"@daily":    "0 0 0 * * * *",
	"@hourly":   "0 0 * * * * *",
	"@minutely": "0 * * * * * *",
	"@secondly": "* * * * * * *",
}

// Keywords returns a copy of the built-in reserved keyword table.
func Keywords() map[string]string {
	return maps.Clone(defaultKeywords)
}

// Config holds the tables consulted while parsing. Keywords maps
// reserved keywords to their expansions; a nil map means the built-in
// table, a non-nil empty map disables keywords. DefaultToken is the
// token given to fields that are not supplied; empty means
// field.DefaultToken.
//
// The field order is not configurable: it is always the order of
// field.Names.
type Config struct {
	Keywords     map[string]string
	DefaultToken string
}

// DefaultConfig returns the configuration used by the package-level
// constructors.
func DefaultConfig() Config {
	return Config{
		Keywords:     Keywords(),
		DefaultToken: field.DefaultToken,
	}
}

func (c Config) keywords() map[string]string {
	if c.Keywords == nil {
		return defaultKeywords
	}
	return c.Keywords
}

func (c Config) defaultToken() string {
	if c.DefaultToken == "" {
		return field.DefaultToken
	}
	return c.DefaultToken
}

// Expand returns the expansion of a reserved keyword.
func (c Config) Expand(keyword string) (string, bool) {
	expansion, ok := c.keywords()[keyword]
	return expansion, ok
}
