// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the current time for testability. Production code
// injects Real(); tests inject Fake() with deterministic time control.
//
// Code that would call time.Now to decide whether an expression
// matches "now" should take a Clock instead.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
