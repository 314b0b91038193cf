// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cron parses 7-field cron expressions and reports whether a
// point in time matches them.
//
// Supported syntax:
//
//	┌───────────── second (0-59)
//	│ ┌───────────── minute (0-59)
//	│ │ ┌───────────── hour (0-23)
//	│ │ │ ┌───────────── day of month (1-31)
//	│ │ │ │ ┌───────────── month (1-12)
//	│ │ │ │ │ ┌───────────── weekday (0-6, 0=Sunday; 7 is also Sunday)
//	│ │ │ │ │ │ ┌───────────── year (1970-2099)
//	│ │ │ │ │ │ │
//	* * * * * * *
//
// The per-field token grammar lives in package field. This package
// owns the expression as a whole: splitting text into seven tokens,
// expanding reserved keywords (@daily, @weekly, ...), the @reboot
// marker, and matching a [time.Time] against all seven fields.
//
// There are three ways to build an [Expression]:
//
//	expression, err := cron.Parse("0 */5 * * * mon-fri *")
//	expression, err := cron.FromFields(map[string]string{"hour": "5"})
//	expression := cron.Reboot()
//
// [New] picks between the first two. Each has a method form on
// [Config] for callers that supply their own keyword table.
//
// A reboot expression means "run once at startup" and has no calendar
// meaning. Check [Expression.IsReboot] before calling
// [Expression.Matches], which panics on a reboot expression.
//
// Expressions are immutable values and safe for concurrent use.
// Nothing here computes a next fire time or runs anything; callers
// poll Matches from their own loop.
package cron
