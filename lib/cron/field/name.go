// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import "fmt"

// Name identifies one of the seven fields of a cron expression. The
// numeric value of a Name is its position in the expression.
type Name int

const (
	Second Name = iota
	Minute
	Hour
	Day
	Month
	Weekday
	Year
)

// Count is the number of fields in a cron expression.
const Count = 7

// DefaultToken is the token a field takes when no value is given for
// it. It matches every value the field can hold.
const DefaultToken = "*"

// Names returns every field name in expression order.
func Names() [Count]Name {
	return [Count]Name{Second, Minute, Hour, Day, Month, Weekday, Year}
}

// String returns the lowercase field name used as a key when building
// expressions from named values.
func (n Name) String() string {
	switch n {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Month:
		return "month"
	case Weekday:
		return "weekday"
	case Year:
		return "year"
	default:
		return fmt.Sprintf("field(%d)", int(n))
	}
}

// Valid reports whether n is one of the seven field names.
func (n Name) Valid() bool {
	return n >= Second && n <= Year
}

// Lookup returns the Name whose String form is name.
func Lookup(name string) (Name, bool) {
	for _, candidate := range Names() {
		if candidate.String() == name {
			return candidate, true
		}
	}
	return 0, false
}

// Bounds returns the smallest and largest value a field accepts in a
// token. Weekday allows 7 as an alias for Sunday, so its upper bound is
// 7 even though [Value.Contains] never sees a weekday above 6.
func (n Name) Bounds() (minimum, maximum int) {
	switch n {
	case Second, Minute:
		return 0, 59
	case Hour:
		return 0, 23
	case Day:
		return 1, 31
	case Month:
		return 1, 12
	case Weekday:
		return 0, 7
	case Year:
		return 1970, 2099
	default:
		return 0, -1
	}
}

var monthNames = map[string]int{
	"jan": 1,
	"feb": 2,
	"mar": 3,
	"apr": 4,
	"may": 5,
	"jun": 6,
	"jul": 7,
	"aug": 8,
	"sep": 9,
	"oct": 10,
	"nov": 11,
	"dec": 12,
}

var weekdayNames = map[string]int{
	"sun": 0,
	"mon": 1,
	"tue": 2,
	"wed": 3,
	"thu": 4,
	"fri": 5,
	"sat": 6,
}

// aliases returns the symbolic names a field accepts in place of
// numbers, or nil if the field is purely numeric.
func (n Name) aliases() map[string]int {
	switch n {
	case Month:
		return monthNames
	case Weekday:
		return weekdayNames
	default:
		return nil
	}
}

// fold maps a parsed value onto the value stored in the set. Only the
// weekday field folds anything: 7 is Sunday.
func (n Name) fold(value int) int {
	if n == Weekday && value == 7 {
		return 0
	}
	return value
}
