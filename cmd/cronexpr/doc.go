// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Cronexpr parses, inspects and matches 7-field cron expressions from
// the command line. It provides subcommands to print the canonical form
// of an expression (parse, build), test a time against it (match), list
// the values each field accepts (explain) and show the reserved keyword
// table (keywords).
package main
