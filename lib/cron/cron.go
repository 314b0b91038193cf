// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"fmt"
	"strings"
	"time"

	"github.com/bureau-foundation/cronexpr/lib/cron/field"
)

// Expression is a parsed cron expression: one field.Value per field,
// in field order, or the reboot marker. Use Parse, FromFields, New or
// Reboot to create one. The zero Expression has no fields and matches
// nothing useful; IsZero reports it.
type Expression struct {
	fields [field.Count]field.Value
	reboot bool
}

// Parse parses a 7-field expression, a reserved keyword, or the reboot
// keyword using the built-in keyword table.
func Parse(expression string) (Expression, error) {
	return Config{}.Parse(expression)
}

// MustParse is like Parse but panics on error. Intended for
// package-level variables and tests.
func MustParse(expression string) Expression {
	parsed, err := Parse(expression)
	if err != nil {
		panic(err)
	}
	return parsed
}

// FromFields builds an expression from field name to token pairs.
// Missing fields match any value.
func FromFields(values map[string]string) (Expression, error) {
	return Config{}.FromFields(values)
}

// New parses expression when it is non-empty and otherwise builds from
// values.
func New(expression string, values map[string]string) (Expression, error) {
	return Config{}.New(expression, values)
}

// Reboot returns the run-once-at-startup expression. Its fields hold
// the default token for display only; it cannot be matched.
func Reboot() Expression {
	var fields [field.Count]field.Value
	for _, name := range field.Names() {
		value, err := field.Parse(name, field.DefaultToken)
		if err != nil {
			panic(fmt.Sprintf("cron: default token rejected by %s field: %v", name, err))
		}
		fields[name] = value
	}
	return Expression{fields: fields, reboot: true}
}

// Parse parses expression using c's keyword table.
func (c Config) Parse(expression string) (Expression, error) {
	result, err := c.normalize(expression)
	if err != nil {
		return Expression{}, err
	}

	switch result := result.(type) {
	case rebootMarker:
		return Reboot(), nil
	case fieldMapping:
		return c.FromFields(result)
	default:
		panic(fmt.Sprintf("cron: unexpected normalized form %T", result))
	}
}

// FromFields builds an expression from field name to token pairs,
// giving missing fields c's default token.
func (c Config) FromFields(values map[string]string) (Expression, error) {
	fields, err := c.build(values)
	if err != nil {
		return Expression{}, err
	}
	return Expression{fields: fields}, nil
}

// New parses expression when it is non-empty and otherwise builds from
// values.
func (c Config) New(expression string, values map[string]string) (Expression, error) {
	if expression != "" {
		return c.Parse(expression)
	}
	return c.FromFields(values)
}

// IsReboot reports whether e is the run-once-at-startup expression.
func (e Expression) IsReboot() bool { return e.reboot }

// IsZero reports whether e was never constructed.
func (e Expression) IsZero() bool { return !e.reboot && e.fields[field.Second].IsZero() }

// Field returns the parsed value of one field.
func (e Expression) Field(name field.Name) field.Value {
	if !name.Valid() {
		return field.Value{}
	}
	return e.fields[name]
}

// Fields returns every field value in field order.
func (e Expression) Fields() [field.Count]field.Value { return e.fields }

// Decompose splits t, in its own location, into the integer each field
// is matched against. Weekday is numbered as time.Weekday: 0 is Sunday.
func Decompose(t time.Time) [field.Count]int {
	var components [field.Count]int
	components[field.Second] = t.Second()
	components[field.Minute] = t.Minute()
	components[field.Hour] = t.Hour()
	components[field.Day] = t.Day()
	components[field.Month] = int(t.Month())
	components[field.Weekday] = int(t.Weekday())
	components[field.Year] = t.Year()
	return components
}

// Matches reports whether every field of e accepts the matching
// component of t. Sub-second precision is ignored.
//
// Matches panics if e is a reboot expression: reboot expressions have
// no calendar meaning and callers must check IsReboot first.
func (e Expression) Matches(t time.Time) bool {
	if e.reboot {
		panic("cron: Matches called on " + RebootKeyword + " expression")
	}
	components := Decompose(t)
	for name, value := range e.fields {
		if !value.Contains(components[name]) {
			return false
		}
	}
	return true
}

// Equal reports whether e and other accept the same values in every
// field. Two reboot expressions are equal to each other and to nothing
// else.
func (e Expression) Equal(other Expression) bool {
	if e.reboot || other.reboot {
		return e.reboot == other.reboot
	}
	for name := range e.fields {
		if !e.fields[name].Equal(other.fields[name]) {
			return false
		}
	}
	return true
}

// String returns the canonical form of e: the reboot keyword, or the
// seven field tokens separated by single spaces.
func (e Expression) String() string {
	if e.reboot {
		return RebootKeyword
	}
	tokens := make([]string, 0, field.Count)
	for _, value := range e.fields {
		tokens = append(tokens, value.String())
	}
	return strings.Join(tokens, " ")
}

// MarshalText implements encoding.TextMarshaler, so JSON, YAML and
// CBOR carry expressions as their canonical string.
func (e Expression) MarshalText() ([]byte, error) {
	if e.IsZero() {
		return nil, fmt.Errorf("cron: cannot marshal zero expression")
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the built-in
// keyword table.
func (e *Expression) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
