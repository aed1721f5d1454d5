// Package tui renders a control in the terminal.
//
// Canvas is a ports.WidgetFactory whose sliders are drawn with lipgloss, and
// Model is the Bubble Tea program that edits the selection chain and the value.
package tui
