package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/paramlink"
	"github.com/aretw0/paramlink/pkg/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type row int

const (
	rowTarget row = iota
	rowSubTarget
	rowParameter
	rowValue
	rowCount
)

var rowLevels = [...]domain.Level{domain.LevelTarget, domain.LevelSubTarget, domain.LevelParameter}

type savedMsg struct{ err error }

// Model is the interactive host for a single control.
type Model struct {
	ctl    *paramlink.Control
	canvas *Canvas
	sink   *StatusSink

	focus     row
	status    string
	statusErr bool
	seenErrs  int
	width     int
}

// NewModel wires a model to a control whose widgets come from canvas and
// whose failures go to sink.
func NewModel(ctl *paramlink.Control, canvas *Canvas, sink *StatusSink) Model {
	_, seen := sink.Last()
	return Model{ctl: ctl, canvas: canvas, sink: sink, seenErrs: seen}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %v", msg.err), true)
		} else {
			m.setStatus("Saved.", false)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.focus = (m.focus + rowCount - 1) % rowCount
	case "down", "j", "tab":
		m.focus = (m.focus + 1) % rowCount
	case "left", "h":
		m.step(-1)
	case "right", "l":
		m.step(1)
	case "e":
		if m.ctl.State().Lifecycle == domain.StateActive {
			m.ctl.Disable()
			m.setStatus("Disabled.", false)
		} else {
			m.ctl.Enable()
			m.setStatus("Enabled.", false)
		}
	case "r":
		m.ctl.Refresh()
		m.setStatus("Refreshed.", false)
	case "s":
		// Only the store write leaves the update loop.
		ctl, snap := m.ctl, m.ctl.Snapshot()
		return m, func() tea.Msg {
			return savedMsg{err: ctl.Persist(context.Background(), snap)}
		}
	}
	m.collectErrors()
	return m, nil
}

func (m *Model) step(dir int) {
	if m.focus == rowValue {
		w, ok := m.canvas.Active()
		if !ok {
			m.setStatus("No widget to edit.", true)
			return
		}
		w.Nudge(dir)
		return
	}

	sel := m.selection(m.focus)
	if len(sel.Choices) == 0 {
		return
	}
	i := slices.Index(sel.Choices, sel.Value)
	next := sel.Choices[(i+dir+len(sel.Choices))%len(sel.Choices)]
	m.ctl.Select(rowLevels[m.focus], next)
}

func (m *Model) collectErrors() {
	last, n := m.sink.Last()
	if n > m.seenErrs {
		m.seenErrs = n
		m.setStatus(last, true)
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m Model) selection(r row) domain.Selection {
	st := m.ctl.State()
	switch r {
	case rowSubTarget:
		return st.SubTarget
	case rowParameter:
		return st.Parameter
	default:
		return st.Target
	}
}

func (m Model) View() string {
	st := m.ctl.State()
	var b strings.Builder

	b.WriteString(titleStyle.Render("paramlink") + mutedStyle.Render("  "+st.ID) + "\n\n")

	names := [...]string{"Target", "SubTarget", "Parameter"}
	for i, sel := range []domain.Selection{st.Target, st.SubTarget, st.Parameter} {
		b.WriteString(m.cursor(row(i)) + fmt.Sprintf("%-10s", names[i]) + " " + renderChoice(sel) + "\n")
	}
	b.WriteString(m.cursor(rowValue) + fmt.Sprintf("%-10s", "Value") + " " + renderMode(st) + "\n\n")

	if w, ok := m.canvas.Active(); ok {
		b.WriteString(w.Render() + "\n")
	} else if !st.Attached {
		b.WriteString(errorStyle.Render("Not attached to a supported container.") + "\n")
	} else {
		b.WriteString(mutedStyle.Render("Widget disabled.") + "\n")
	}

	if m.status != "" {
		style := okStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	b.WriteString("\n" + footerStyle.Render("↑/↓ move  ←/→ change  e enable/disable  r refresh  s save  q quit"))
	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

func (m Model) cursor(r row) string {
	if m.focus == r {
		return cursorStyle.Render("> ")
	}
	return "  "
}

func renderChoice(sel domain.Selection) string {
	v := sel.Value
	if v == "" {
		v = "(none)"
	}
	return valueStyle.Render("‹ "+v+" ›") + mutedStyle.Render(fmt.Sprintf("  %d choices", len(sel.Choices)-1))
}

func renderMode(st domain.ControlState) string {
	cfg := st.Value
	mode := string(st.Mode)
	if cfg.Constrained {
		mode += ", constrained"
	}
	return valueStyle.Render(fmt.Sprintf(domain.DefaultFormat, cfg.Value)) + mutedStyle.Render("  "+mode)
}
