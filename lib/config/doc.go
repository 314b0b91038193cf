// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads cronexpr configuration from a single file.
//
// The file is named either by the CRONEXPR_CONFIG environment variable
// (via [Load]) or a --config flag (via [LoadFile]). There are no
// fallbacks, no ~/.config discovery, and no automatic file search.
//
// Files ending in .json or .jsonc are read as JSONC (JSON with comments
// and trailing commas); anything else is read as YAML. Unknown keys are
// rejected in both formats so typos surface immediately.
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override base values when
// [Config].Environment matches. Production defaults to UTC when its
// section does not name a location.
//
// ${VAR} and ${VAR:-default} patterns in the location are expanded
// from the environment after loading.
//
// Key exports:
//
//   - [Config] -- keywords, location, default token
//   - [Default] -- built-in values with no file
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.CronConfig] -- the parser configuration to inject into
//     package cron
package config
