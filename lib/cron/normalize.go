// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"strings"

	"github.com/bureau-foundation/cronexpr/lib/cron/field"
)

// normalized is the result of reading an expression string: either a
// mapping of field name to raw token, or the reboot marker.
type normalized interface {
	isNormalized()
}

// fieldMapping maps field names (field.Name.String) to raw tokens.
type fieldMapping map[string]string

// rebootMarker stands in for an expression that has no fields.
type rebootMarker struct{}

func (fieldMapping) isNormalized() {}
func (rebootMarker) isNormalized() {}

// normalize expands reserved keywords, splits the expression on
// whitespace and pairs each token with its field name. The reboot
// keyword is recognized before keyword expansion and yields the
// reboot marker.
func (c Config) normalize(expression string) (normalized, error) {
	if expression == RebootKeyword {
		return rebootMarker{}, nil
	}

	if expansion, ok := c.Expand(expression); ok {
		expression = expansion
	}

	tokens := strings.Fields(expression)
	if len(tokens) != FieldCount {
		return nil, &MalformedExpressionError{
			Expression: expression,
			Got:        len(tokens),
			Want:       FieldCount,
		}
	}

	mapping := make(fieldMapping, FieldCount)
	for index, name := range field.Names() {
		mapping[name.String()] = tokens[index]
	}
	return mapping, nil
}

// build parses one token per field, in field order. Fields missing
// from values take the default token; keys that are not field names
// are ignored. Field parse errors are returned as-is.
func (c Config) build(values map[string]string) ([field.Count]field.Value, error) {
	var fields [field.Count]field.Value
	for _, name := range field.Names() {
		token, ok := values[name.String()]
		if !ok {
			token = c.defaultToken()
		}
		value, err := field.Parse(name, token)
		if err != nil {
			return [field.Count]field.Value{}, err
		}
		fields[name] = value
	}
	return fields, nil
}
