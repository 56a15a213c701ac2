// SPDX-License-Identifier: EPL-2.0

// Package ui renders a live terminal view of a running monitor with
// bubbletea and lipgloss.
//
// The monitor runs in its own goroutine and hands readings over a channel;
// the model only draws them:
//
//	readings := make(chan heart.Reading, 64)
//	go drive(monitor, readings) // closes readings when done
//	p := tea.NewProgram(ui.NewModel("finger.wav", readings), tea.WithAltScreen())
//	_, err := p.Run()
package ui
