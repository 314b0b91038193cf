// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette for styled terminal output. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	NormalText       lipgloss.Color
	FaintText        lipgloss.Color
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText:       lipgloss.Color("252"),
	FaintText:        lipgloss.Color("245"),
	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
}
