// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the cronexpr
// binary.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a flag source, and a Run
// function. Flags come either from a [pflag.FlagSet] factory or from a
// tagged params struct bound by [BindFlags]. Commands are assembled into
// a tree by the commands package and dispatched via [Command.Execute],
// which handles flag parsing, subcommand routing, and structured help
// output with examples.
//
// A command that has both flags and subcommands owns only the flags
// that precede the subcommand name, so root-level options such as
// --config work ahead of any subcommand.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// [ExitError] carries a non-zero exit status for outcomes that are not
// failures, [JSONOutput] adds --json to a params struct, and
// [NewCommandLogger] builds the slog logger commands write to.
package cli
