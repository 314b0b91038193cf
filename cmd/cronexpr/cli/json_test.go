// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"testing"
)

func TestEmitJSON(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		var output bytes.Buffer
		var flags JSONOutput
		done, err := flags.EmitJSON(&output, map[string]string{"a": "b"})
		if done || err != nil {
			t.Errorf("EmitJSON() = (%v, %v), want (false, nil)", done, err)
		}
		if output.Len() != 0 {
			t.Errorf("wrote %q with --json unset", output.String())
		}
	})

	t.Run("indented", func(t *testing.T) {
		var output bytes.Buffer
		flags := JSONOutput{OutputJSON: true}
		done, err := flags.EmitJSON(&output, map[string]string{"expression": "@reboot"})
		if !done || err != nil {
			t.Fatalf("EmitJSON() = (%v, %v), want (true, nil)", done, err)
		}
		want := "{\n  \"expression\": \"@reboot\"\n}\n"
		if output.String() != want {
			t.Errorf("output = %q, want %q", output.String(), want)
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		var output bytes.Buffer
		flags := JSONOutput{OutputJSON: true}
		var empty []string
		if _, err := flags.EmitJSON(&output, empty); err != nil {
			t.Fatal(err)
		}
		if output.String() != "[]\n" {
			t.Errorf("output = %q, want []", output.String())
		}
	})
}
