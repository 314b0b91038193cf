// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"errors"
	"fmt"
)

// ErrMalformedExpression matches every [*MalformedExpressionError]
// under errors.Is.
var ErrMalformedExpression = errors.New("cron: malformed expression")

// MalformedExpressionError reports an expression that did not split
// into the expected number of fields after keyword expansion.
type MalformedExpressionError struct {
	Expression string
	Got        int
	Want       int
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("cron: expression contains %d fields; expects %d", e.Got, e.Want)
}

func (e *MalformedExpressionError) Is(target error) bool {
	return target == ErrMalformedExpression
}
