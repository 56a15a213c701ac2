// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ik5/ppgbeat/heart"
)

const (
	maxHistory   = 512
	defaultWidth = 60
)

type readingMsg heart.Reading

type doneMsg struct{}

// Model is the bubbletea model of the live view.
type Model struct {
	title    string
	readings <-chan heart.Reading

	width  int
	height int

	history []float64
	last    heart.Reading
	beats   int
	paused  bool
	done    bool
}

// NewModel shows readings until the channel is closed.
func NewModel(title string, readings <-chan heart.Reading) Model {
	return Model{
		title:    title,
		readings: readings,
		history:  make([]float64, 0, maxHistory),
	}
}

func (m Model) Init() tea.Cmd {
	return waitReading(m.readings)
}

func waitReading(ch <-chan heart.Reading) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return doneMsg{}
		}
		return readingMsg(r)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case readingMsg:
		// Readings keep draining while paused so the producer never blocks.
		if !m.paused {
			m.last = heart.Reading(msg)
			if msg.Beat {
				m.beats++
			}
			if len(m.history) == maxHistory {
				copy(m.history, m.history[1:])
				m.history = m.history[:maxHistory-1]
			}
			m.history = append(m.history, msg.Normalized)
		}
		return m, waitReading(m.readings)
	case doneMsg:
		m.done = true
	}
	return m, nil
}

func (m Model) View() string {
	w := defaultWidth
	if m.width > 8 {
		w = m.width - 6
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("ppgbeat  " + m.title))
	sb.WriteString("\n")

	if len(m.history) == 0 {
		sb.WriteString(labelStyle.Render("waiting for the first sample..."))
		sb.WriteString("\n")
		return sb.String()
	}

	body := waveStyle.Render(sparkline(m.history, w, 0, 1)) + "\n" +
		m.statusLine()
	sb.WriteString(panelStyle.Render(body))
	sb.WriteString("\n")

	help := "q quit  p pause"
	switch {
	case m.done:
		help = "trace finished  " + help
	case m.paused:
		help = "paused  " + help
	}
	sb.WriteString(helpStyle.Render(help))

	return sb.String()
}

func (m Model) statusLine() string {
	heartMark := " "
	if m.last.Beat {
		heartMark = beatStyle.Render("♥")
	}

	field := func(label, value string) string {
		return labelStyle.Render(label+" ") + valueStyle.Render(value)
	}

	return strings.Join([]string{
		heartMark,
		field("bpm", fmt.Sprintf("%5.1f", m.last.BPM)),
		field("beats", fmt.Sprintf("%d", m.beats)),
		field("amp", fmt.Sprintf("%4.0f", m.last.Amplitude)),
		field("Δamp", fmt.Sprintf("%.2f", m.last.AmplitudeChange)),
		field("Δbpm", fmt.Sprintf("%.2f", m.last.BPMChange)),
		field("raw", fmt.Sprintf("%4.0f", m.last.Raw)),
	}, "  ")
}

// Beats reports how many beats were shown.
func (m Model) Beats() int { return m.beats }

// Done reports whether the reading channel was closed.
func (m Model) Done() bool { return m.done }
