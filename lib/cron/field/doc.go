// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package field parses the tokens of a single cron field into a set of
// accepted integers.
//
// A cron expression has seven fields, always in this order:
//
//	┌───────────── second (0-59)
//	│ ┌───────────── minute (0-59)
//	│ │ ┌───────────── hour (0-23)
//	│ │ │ ┌───────────── day of month (1-31)
//	│ │ │ │ ┌───────────── month (1-12 or jan-dec)
//	│ │ │ │ │ ┌───────────── weekday (0-6 or sun-sat, 0=Sunday, 7=Sunday)
//	│ │ │ │ │ │ ┌───────────── year (1970-2099)
//	│ │ │ │ │ │ │
//	* * * * * * *
//
// Each token supports:
//   - Wildcard: *
//   - Single values: 5, jan, fri
//   - Ranges: 1-5, mon-fri
//   - Lists: 1,3,5
//   - Steps: */15, 1-30/5, 10/5 (10 through the field maximum)
//
// Weekday numbering follows [time.Weekday]: 0 is Sunday and 6 is
// Saturday. 7 is accepted as a second spelling of Sunday. Month and
// weekday names are case-insensitive three-letter abbreviations.
//
// [Parse] is the per-field constructor. It returns a [Value], which
// answers membership queries with [Value.Contains] and renders back to
// its token with [Value.String]. Parse failures are [*Error] values
// wrapping one of the Err* sentinels.
//
// This package depends on no other packages in this module.
package field
