package tui_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/paramlink"
	"github.com/aretw0/paramlink/internal/presentation/tui"
	"github.com/aretw0/paramlink/pkg/adapters/memory"
	"github.com/aretw0/paramlink/pkg/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func apply(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next
		if cmd != nil {
			if out := cmd(); out != nil {
				if _, quit := out.(tea.QuitMsg); !quit {
					m, _ = m.Update(out)
				}
			}
		}
	}
	return m
}

type env struct {
	ctl    *paramlink.Control
	canvas *tui.Canvas
	sink   *tui.StatusSink
	p1     *memory.Parameter
}

func newEnv(opts ...paramlink.Option) env {
	p1 := memory.NewParameter(2, 0, 5, true)
	reg := memory.NewRegistry()
	reg.Add("A", memory.NewObject().With("s1", memory.NewSubComponent().With("p1", p1)))
	reg.Add("B", memory.NewObject())

	canvas := tui.NewCanvas()
	sink := &tui.StatusSink{}
	ctl := paramlink.New(memory.NewScene().Attachment, paramlink.Host{
		Registry: reg,
		Widgets:  canvas,
		Errors:   sink,
	}, opts...)
	return env{ctl: ctl, canvas: canvas, sink: sink, p1: p1}
}

func TestModel_NavigatesToBinding(t *testing.T) {
	e := newEnv()
	m := tea.Model(tui.NewModel(e.ctl, e.canvas, e.sink))

	m = apply(t, m,
		key("l"),            // Target: A
		key("j"), key("l"),  // SubTarget: s1
		key("j"), key("l"),  // Parameter: p1
	)

	st := e.ctl.State()
	require.Equal(t, domain.ModeBound, st.Mode)
	assert.Equal(t, "p1", st.Parameter.Value)

	m = apply(t, m, key("j"), key("l"), key("l"))
	assert.InDelta(t, 2.5, e.p1.Value(), 1e-9, "two nudges of a twentieth of [0,5]")

	view := m.View()
	assert.Contains(t, view, "My Slider")
	assert.Contains(t, view, "2.50")
}

func TestModel_WrapsChoices(t *testing.T) {
	e := newEnv()
	m := tea.Model(tui.NewModel(e.ctl, e.canvas, e.sink))

	apply(t, m, key("h"))
	assert.Equal(t, "B", e.ctl.State().Target.Value)
}

func TestModel_ToggleEnable(t *testing.T) {
	e := newEnv()
	m := tea.Model(tui.NewModel(e.ctl, e.canvas, e.sink))

	m = apply(t, m, key("e"))
	assert.Equal(t, domain.StateInert, e.ctl.State().Lifecycle)
	assert.Contains(t, m.View(), "Widget disabled.")

	m = apply(t, m, key("e"))
	assert.Equal(t, domain.StateActive, e.ctl.State().Lifecycle)
	_, ok := e.canvas.Active()
	assert.True(t, ok)
}

func TestModel_SaveWithoutStoreShowsError(t *testing.T) {
	e := newEnv()
	m := apply(t, tui.NewModel(e.ctl, e.canvas, e.sink), key("s"))
	assert.Contains(t, m.View(), "Save failed")
}

func TestModel_SaveWithStore(t *testing.T) {
	store := memory.NewStore()
	e := newEnv(paramlink.WithStore(store), paramlink.WithID("tui"))
	m := apply(t, tui.NewModel(e.ctl, e.canvas, e.sink), key("s"))
	assert.Contains(t, m.View(), "Saved.")
}

func TestModel_SaveCapturesSnapshotOnUpdateLoop(t *testing.T) {
	store := memory.NewStore()
	e := newEnv(paramlink.WithStore(store), paramlink.WithID("tui"))
	var m tea.Model = tui.NewModel(e.ctl, e.canvas, e.sink)

	m, cmd := m.Update(key("s"))
	require.NotNil(t, cmd)

	done := make(chan tea.Msg)
	go func() { done <- cmd() }()
	m = apply(t, m, key("l"))
	m, _ = m.Update(<-done)

	assert.Contains(t, m.View(), "Saved.")
	assert.Equal(t, "A", e.ctl.State().Target.Value)
	snap, err := store.Load(context.Background(), "tui")
	require.NoError(t, err)
	assert.Equal(t, "", snap.Target, "the snapshot is the state at the moment of the key press")
}

func TestCanvas_ActiveFollowsReenable(t *testing.T) {
	e := newEnv()
	first, ok := e.canvas.Active()
	require.True(t, ok)

	e.ctl.Disable()
	_, ok = e.canvas.Active()
	assert.False(t, ok)

	e.ctl.Enable()
	second, ok := e.canvas.Active()
	require.True(t, ok)
	assert.NotSame(t, first, second)
}

func TestModel_Quit(t *testing.T) {
	e := newEnv()
	_, cmd := tui.NewModel(e.ctl, e.canvas, e.sink).Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestInspectMarkdown(t *testing.T) {
	reg := memory.NewRegistry()
	reg.Add("A", memory.NewObject().With("s1", memory.NewSubComponent().With("p1", memory.NewParameter(2, 0, 5, true))))
	reg.Add("B", memory.NewObject())

	md := tui.InspectMarkdown("Scene", reg)
	assert.Contains(t, md, "# Scene")
	assert.Contains(t, md, "## A")
	assert.Contains(t, md, "| p1 | 2 | 0 | 5 | 2 | true |")
	assert.Contains(t, md, "_No sub-components._")

	assert.Contains(t, tui.InspectMarkdown("Empty", memory.NewRegistry()), "_The registry is empty._")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Equal(t, 8, strings.Count(buf.String(), "\n"))
}
