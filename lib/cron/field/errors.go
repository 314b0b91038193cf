// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
	ErrInvalidRange = errors.New("invalid range")
	ErrInvalidStep  = errors.New("invalid step")
	ErrOutOfRange   = errors.New("value out of range")
	ErrEmptySet     = errors.New("token produces empty set")
)

// Error reports a token that could not be parsed for a field. Err is
// one of the package sentinels, usually wrapped with detail.
type Error struct {
	Field Name
	Token string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cron: %s field %q: %v", e.Field, e.Token, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
