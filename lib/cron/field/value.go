// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"fmt"
	"strconv"
	"strings"
)

// bitset is a compact set of up to 192 integers, offset by the owning
// field's minimum so the year field (1970-2099) fits.
type bitset [3]uint64

func (b bitset) has(index int) bool {
	if index < 0 || index >= len(b)*64 {
		return false
	}
	return b[index/64]&(1<<uint(index%64)) != 0
}

func (b *bitset) set(index int) { b[index/64] |= 1 << uint(index%64) }

func (b bitset) empty() bool { return b == bitset{} }

// Value is the parsed form of one field token: the set of integers the
// field accepts, plus the token it came from. The zero Value belongs to
// no field and contains nothing.
type Value struct {
	name  Name
	token string
	bits  bitset
}

// Parse turns a raw token into the Value for the named field. Month and
// weekday names are accepted case-insensitively and rendered
// lowercased by [Value.String].
func Parse(name Name, token string) (Value, error) {
	if !name.Valid() {
		return Value{}, &Error{Field: name, Token: token, Err: ErrUnknownField}
	}
	if token == "" {
		return Value{}, &Error{Field: name, Token: token, Err: fmt.Errorf("%w: empty token", ErrInvalidValue)}
	}

	normalized := strings.ToLower(token)
	var bits bitset
	for _, term := range strings.Split(normalized, ",") {
		if err := parseTerm(name, term, &bits); err != nil {
			return Value{}, &Error{Field: name, Token: token, Err: err}
		}
	}
	if bits.empty() {
		return Value{}, &Error{Field: name, Token: token, Err: ErrEmptySet}
	}

	return Value{name: name, token: normalized, bits: bits}, nil
}

// parseTerm adds the values of a single term to bits. A term is one of
// *, */N, V, V/N, V-V, V-V/N.
func parseTerm(name Name, term string, bits *bitset) error {
	minimum, maximum := name.Bounds()

	parts := strings.SplitN(term, "/", 2)
	rangeExpression := parts[0]
	step := 1
	stepped := len(parts) == 2
	if stepped {
		parsed, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("%w %q", ErrInvalidStep, parts[1])
		}
		if parsed <= 0 {
			return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidStep, parsed)
		}
		step = parsed
	}

	var rangeStart, rangeEnd int

	// Open-ended terms stop at Saturday; 7 would only repeat Sunday.
	last := maximum
	if name == Weekday {
		last = 6
	}

	if rangeExpression == "*" {
		rangeStart = minimum
		rangeEnd = last
	} else if dashIndex := strings.IndexByte(rangeExpression, '-'); dashIndex >= 0 {
		startText := rangeExpression[:dashIndex]
		endText := rangeExpression[dashIndex+1:]
		var err error
		rangeStart, err = parseNumber(name, startText)
		if err != nil {
			return err
		}
		rangeEnd, err = parseNumber(name, endText)
		if err != nil {
			return err
		}
		if rangeStart > rangeEnd {
			return fmt.Errorf("%w: start %d > end %d", ErrInvalidRange, rangeStart, rangeEnd)
		}
	} else {
		value, err := parseNumber(name, rangeExpression)
		if err != nil {
			return err
		}
		rangeStart = value
		rangeEnd = value
		if stepped {
			if value < minimum || value > maximum {
				return fmt.Errorf("%w [%d-%d]: got %d", ErrOutOfRange, minimum, maximum, value)
			}
			// 7/S on weekday starts at Sunday.
			rangeStart = name.fold(value)
			rangeEnd = last
		}
	}

	if rangeStart < minimum || rangeEnd > maximum {
		return fmt.Errorf("%w [%d-%d]: got %d-%d", ErrOutOfRange, minimum, maximum, rangeStart, rangeEnd)
	}

	// Compare the remaining distance with step so a huge step cannot
	// overflow value.
	for value := rangeStart; ; value += step {
		bits.set(name.fold(value) - minimum)
		if rangeEnd-value < step {
			break
		}
	}
	return nil
}

// parseNumber reads a single value, either numeric or one of the
// field's symbolic names.
func parseNumber(name Name, text string) (int, error) {
	if aliases := name.aliases(); aliases != nil {
		if value, ok := aliases[text]; ok {
			return value, nil
		}
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidValue, text)
	}
	return value, nil
}

// Name returns the field this value was parsed for.
func (v Value) Name() Name { return v.name }

// IsZero reports whether v is the zero Value.
func (v Value) IsZero() bool { return v.token == "" }

// Contains reports whether value is in the field's accepted set.
func (v Value) Contains(value int) bool {
	minimum, maximum := v.name.Bounds()
	if value < minimum || value > maximum {
		return false
	}
	return v.bits.has(v.name.fold(value) - minimum)
}

// Values returns every accepted value in ascending order. The weekday
// alias 7 is never listed; Sunday appears as 0.
func (v Value) Values() []int {
	minimum, maximum := v.name.Bounds()
	var values []int
	for value := minimum; value <= maximum; value++ {
		if v.name.fold(value) != value {
			continue
		}
		if v.bits.has(value - minimum) {
			values = append(values, value)
		}
	}
	return values
}

// IsAny reports whether v accepts every value of its field, as the
// default token does.
func (v Value) IsAny() bool {
	if v.IsZero() {
		return false
	}
	minimum, maximum := v.name.Bounds()
	for value := minimum; value <= maximum; value++ {
		if !v.bits.has(v.name.fold(value) - minimum) {
			return false
		}
	}
	return true
}

// Equal reports whether v and other belong to the same field and
// accept exactly the same values. Tokens are not compared: "*" and
// "*/1" are equal.
func (v Value) Equal(other Value) bool {
	return v.name == other.name && v.bits == other.bits
}

// String returns the canonical token for v.
func (v Value) String() string { return v.token }
