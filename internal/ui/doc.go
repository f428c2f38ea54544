// Package ui holds the terminal styling shared by CLI commands.
//
// Output is rendered with [lipgloss] styles from a single [Palette]. Colors degrade to plain text
// when the output is not a terminal, so command output stays grep-able in scripts and tests.
package ui
