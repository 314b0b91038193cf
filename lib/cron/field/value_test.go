// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func mustParse(t *testing.T, name Name, token string) Value {
	t.Helper()
	value, err := Parse(name, token)
	if err != nil {
		t.Fatalf("Parse(%s, %q): %v", name, token, err)
	}
	return value
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name  string
		field Name
		token string
		want  []int
	}{
		{"single", Minute, "5", []int{5}},
		{"range", Minute, "1-3", []int{1, 2, 3}},
		{"list", Minute, "1,3,5", []int{1, 3, 5}},
		{"star_hour", Hour, "*/6", []int{0, 6, 12, 18}},
		{"range_step", Second, "1-10/3", []int{1, 4, 7, 10}},
		{"value_step", Minute, "50/3", []int{50, 53, 56, 59}},
		{"day_star_step", Day, "*/10", []int{1, 11, 21, 31}},
		{"month_names", Month, "jan,jun-aug", []int{1, 6, 7, 8}},
		{"month_names_mixed_case", Month, "Dec", []int{12}},
		{"weekday_names", Weekday, "mon-fri", []int{1, 2, 3, 4, 5}},
		{"weekday_seven_is_sunday", Weekday, "7", []int{0}},
		{"weekday_range_to_seven", Weekday, "5-7", []int{0, 5, 6}},
		{"weekday_star", Weekday, "*", []int{0, 1, 2, 3, 4, 5, 6}},
		{"weekday_value_step", Weekday, "4/1", []int{4, 5, 6}},
		{"year_range", Year, "2024-2026", []int{2024, 2025, 2026}},
		{"year_upper_bound", Year, "2099", []int{2099}},
		{"overlapping_terms", Hour, "1-3,2-4", []int{1, 2, 3, 4}},
		{"weekday_seven_step", Weekday, "7/2", []int{0, 2, 4, 6}},
		{"weekday_seven_step_in_list", Weekday, "1,7/1", []int{0, 1, 2, 3, 4, 5, 6}},
		{"step_wider_than_range", Minute, "*/90", []int{0}},
		{"huge_step_day", Day, "*/9223372036854775807", []int{1}},
		{"huge_step_year", Year, "*/9223372036854775807", []int{1970}},
		{"huge_step_at_maximum", Second, "59/9223372036854775807", []int{59}},
		{"huge_step_range", Hour, "3-20/9223372036854775807", []int{3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value := mustParse(t, test.field, test.token)
			if got := value.Values(); !slices.Equal(got, test.want) {
				t.Errorf("Parse(%s, %q).Values() = %v, want %v", test.field, test.token, got, test.want)
			}
			for _, member := range test.want {
				if !value.Contains(member) {
					t.Errorf("Parse(%s, %q).Contains(%d) = false, want true", test.field, test.token, member)
				}
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		field   Name
		token   string
		wantErr error
	}{
		{"empty", Minute, "", ErrInvalidValue},
		{"second_out_of_range", Second, "60", ErrOutOfRange},
		{"hour_out_of_range", Hour, "24", ErrOutOfRange},
		{"day_zero", Day, "0", ErrOutOfRange},
		{"day_out_of_range", Day, "32", ErrOutOfRange},
		{"month_zero", Month, "0", ErrOutOfRange},
		{"weekday_eight", Weekday, "8", ErrOutOfRange},
		{"year_before_epoch", Year, "1969", ErrOutOfRange},
		{"year_after_2099", Year, "2100", ErrOutOfRange},
		{"zero_step", Minute, "*/0", ErrInvalidStep},
		{"negative_step", Minute, "*/-2", ErrInvalidStep},
		{"missing_step", Minute, "*/", ErrInvalidStep},
		{"non_numeric_step", Minute, "*/x", ErrInvalidStep},
		{"backwards_range", Minute, "5-3", ErrInvalidRange},
		{"stepped_start_above_maximum", Minute, "70/5", ErrOutOfRange},
		{"stepped_start_above_maximum_in_list", Minute, "1,70/5", ErrOutOfRange},
		{"stepped_start_below_minimum", Day, "0/5", ErrOutOfRange},
		{"step_overflows_int", Minute, "*/99999999999999999999", ErrInvalidStep},
		{"non_numeric", Minute, "abc", ErrInvalidValue},
		{"empty_term", Minute, "1,,2", ErrInvalidValue},
		{"open_range", Minute, "1-", ErrInvalidValue},
		{"month_name_in_day", Day, "jan", ErrInvalidValue},
		{"unknown_field", Name(42), "*", ErrUnknownField},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.field, test.token)
			if err == nil {
				t.Fatalf("Parse(%s, %q) = nil, want %v", test.field, test.token, test.wantErr)
			}
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Parse(%s, %q) = %v, want errors.Is %v", test.field, test.token, err, test.wantErr)
			}
			var fieldErr *Error
			if !errors.As(err, &fieldErr) {
				t.Fatalf("Parse(%s, %q) error %T is not *Error", test.field, test.token, err)
			}
			if fieldErr.Field != test.field || fieldErr.Token != test.token {
				t.Errorf("Error{Field: %s, Token: %q}, want {%s, %q}", fieldErr.Field, fieldErr.Token, test.field, test.token)
			}
		})
	}
}

func TestErrorMessageNamesField(t *testing.T) {
	_, err := Parse(Hour, "25")
	if err == nil {
		t.Fatal("Parse(hour, 25) = nil, want error")
	}
	for _, want := range []string{"hour", `"25"`, "[0-23]"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err, want)
		}
	}
}

func TestContainsRejectsOutsideBounds(t *testing.T) {
	value := mustParse(t, Day, "*")
	for _, outside := range []int{-1, 0, 32, 1000} {
		if value.Contains(outside) {
			t.Errorf("Contains(%d) = true for day wildcard", outside)
		}
	}
	if (Value{}).Contains(0) {
		t.Error("zero Value contains 0")
	}
}

func TestWeekdaySundayAliases(t *testing.T) {
	zero := mustParse(t, Weekday, "0")
	seven := mustParse(t, Weekday, "7")
	sun := mustParse(t, Weekday, "SUN")
	if !zero.Equal(seven) || !zero.Equal(sun) {
		t.Errorf("0, 7 and SUN should be equal weekday sets: %v %v %v", zero.Values(), seven.Values(), sun.Values())
	}
	if !seven.Contains(0) || !seven.Contains(7) {
		t.Error("weekday 7 should contain both spellings of Sunday")
	}
}

func TestEqualIgnoresToken(t *testing.T) {
	star := mustParse(t, Minute, "*")
	stepOne := mustParse(t, Minute, "*/1")
	full := mustParse(t, Minute, "0-59")
	if !star.Equal(stepOne) || !star.Equal(full) {
		t.Error("*, */1 and 0-59 should be equal minute sets")
	}
	if star.String() == stepOne.String() {
		t.Error("distinct tokens should render distinctly")
	}
	if star.Equal(mustParse(t, Second, "*")) {
		t.Error("values of different fields should not be equal")
	}
}

func TestStringCanonical(t *testing.T) {
	tests := []struct {
		field Name
		token string
		want  string
	}{
		{Minute, "*/5", "*/5"},
		{Month, "JAN-Mar", "jan-mar"},
		{Weekday, "mon,Wed", "mon,wed"},
		{Year, "2030", "2030"},
	}
	for _, test := range tests {
		if got := mustParse(t, test.field, test.token).String(); got != test.want {
			t.Errorf("Parse(%s, %q).String() = %q, want %q", test.field, test.token, got, test.want)
		}
	}
}

func TestIsAny(t *testing.T) {
	tests := []struct {
		field Name
		token string
		want  bool
	}{
		{Second, "*", true},
		{Second, "*/1", true},
		{Second, "0-59", true},
		{Second, "*/2", false},
		{Weekday, "0-6", true},
		{Weekday, "1-7", true},
		{Weekday, "1-6", false},
		{Year, "*", true},
	}
	for _, test := range tests {
		if got := mustParse(t, test.field, test.token).IsAny(); got != test.want {
			t.Errorf("Parse(%s, %q).IsAny() = %v, want %v", test.field, test.token, got, test.want)
		}
	}
	if (Value{}).IsAny() {
		t.Error("zero Value reports IsAny")
	}
}

func TestNames(t *testing.T) {
	want := []string{"second", "minute", "hour", "day", "month", "weekday", "year"}
	names := Names()
	for index, name := range names {
		if int(name) != index {
			t.Errorf("Names()[%d] = %d, want position to equal value", index, int(name))
		}
		if name.String() != want[index] {
			t.Errorf("Names()[%d].String() = %q, want %q", index, name.String(), want[index])
		}
		looked, ok := Lookup(want[index])
		if !ok || looked != name {
			t.Errorf("Lookup(%q) = %v, %v; want %v, true", want[index], looked, ok, name)
		}
	}
	if _, ok := Lookup("dow"); ok {
		t.Error("Lookup(dow) should fail")
	}
}

func TestDefaultTokenParsesForEveryField(t *testing.T) {
	for _, name := range Names() {
		value := mustParse(t, name, DefaultToken)
		if !value.IsAny() {
			t.Errorf("DefaultToken for %s does not accept every value", name)
		}
	}
}
