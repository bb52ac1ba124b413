// Package tui provides the live terminal view of a single replicator
// trajectory evolving along the phase line.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/evoterm/gamescape/internal/dynamics"
	"github.com/evoterm/gamescape/internal/render"
	"github.com/evoterm/gamescape/internal/sim"
)

const (
	flowWidth       = 60
	graphWidth      = 70
	graphHeight     = 12
	historyCapacity = 600
	stepsPerFrame   = 5
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps one trajectory and renders it against the flow line.
type Model struct {
	matrix  dynamics.PayoffMatrix
	name    string
	integ   sim.Integrator
	cls     dynamics.Classification
	x, x0   float64
	t, dt   float64
	history []float64
	running bool
	fps     int
}

// NewModel prepares the live view; the classification is computed
// once up front since it never changes during a run.
func NewModel(m dynamics.PayoffMatrix, name string, integ sim.Integrator, x0, dt float64, fps int) (Model, error) {
	cls, err := dynamics.ClassifyMatrix(m)
	if err != nil {
		return Model{}, err
	}
	if fps <= 0 {
		fps = 30
	}
	return Model{
		matrix:  m,
		name:    name,
		integ:   integ,
		cls:     cls,
		x:       x0,
		x0:      x0,
		dt:      dt,
		history: append(make([]float64, 0, historyCapacity), x0),
		running: true,
		fps:     fps,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.x = m.x0
			m.t = 0
			m.history = append(m.history[:0], m.x0)
		}
	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerFrame; i++ {
				m.x = clamp01(m.integ.Step(m.matrix, m.x, m.t, m.dt))
				m.t += m.dt
			}
			m.history = append(m.history, m.x)
			if len(m.history) > historyCapacity {
				m.history = m.history[len(m.history)-historyCapacity:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	title := "replicator dynamics"
	if m.name != "" {
		title = fmt.Sprintf("replicator dynamics: %s", m.name)
	}
	sb.WriteString(headerStyle.Render(title) + "\n\n")

	sb.WriteString(render.FlowLine(m.matrix, flowWidth, render.DefaultStyles()) + "\n")
	sb.WriteString(m.cursorLine() + "\n\n")

	if len(m.history) > 1 {
		sb.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("x(t)"),
		) + "\n\n")
	}

	rows := []struct{ label, value string }{
		{"classification", string(m.cls)},
		{"t", fmt.Sprintf("%.2f", m.t)},
		{"x", fmt.Sprintf("%.4f", m.x)},
		{"dx/dt", fmt.Sprintf("%+.6f", m.matrix.Flow(m.x))},
	}
	for _, row := range rows {
		sb.WriteString(labelStyle.Render(row.label) + valueStyle.Render(row.value) + "\n")
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	sb.WriteString(helpStyle.Render(fmt.Sprintf("[%s]  space pause/resume · r reset · q quit", status)))

	return sb.String()
}

// cursorLine marks the current frequency under the flow line.
func (m Model) cursorLine() string {
	pos := int(m.x * float64(flowWidth-1))
	if pos < 0 {
		pos = 0
	}
	if pos >= flowWidth {
		pos = flowWidth - 1
	}
	// Aligns with FlowLine's "  all-D |" prefix.
	return strings.Repeat(" ", 9+pos) + cursorStyle.Render("^")
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
