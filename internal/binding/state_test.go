package binding_test

import (
	"testing"

	"github.com/aretw0/paramlink/internal/binding"
	"github.com/aretw0/paramlink/pkg/adapters/memory"
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	cfg     domain.WidgetConfig
	value   float64
	pushes  int
	configs int
}

func (v *fakeView) Configure(cfg domain.WidgetConfig) { v.cfg = cfg; v.configs++ }
func (v *fakeView) SetLabel(label string)             { v.cfg.Label = label }
func (v *fakeView) SetValue(x float64)                { v.value = x; v.pushes++ }

func TestState_Defaults(t *testing.T) {
	s := binding.New(domain.DefaultLabel)

	assert.Equal(t, domain.ModeUnbound, s.Mode())
	assert.Equal(t, domain.ValueConfig{
		Label: "My Slider",
		Value: 0,
		Min:   0,
		Max:   10,
	}, s.Config())
	assert.True(t, s.WidgetConfig().Editable)
	assert.Equal(t, "%.2f", s.WidgetConfig().Precision)
}

func TestState_UnboundEditIsLocal(t *testing.T) {
	s := binding.New("x")
	s.SetValue(42)

	assert.Equal(t, 42.0, s.Value(), "free range is not constrained")
}

func TestState_BindToMirrorsHandle(t *testing.T) {
	p := memory.NewParameter(2, 0, 5, true)
	view := &fakeView{}
	s := binding.New("Volume")
	s.Attach(view)

	s.BindTo(p)

	assert.Equal(t, domain.ModeBound, s.Mode())
	assert.Equal(t, domain.ValueConfig{Label: "Volume", Value: 2, Min: 0, Max: 5, Default: 2, Constrained: true}, s.Config())
	assert.False(t, view.cfg.Editable)
	assert.True(t, view.cfg.Visible)
	assert.Equal(t, 5.0, view.cfg.Max)
	assert.Equal(t, 2.0, view.value)
	assert.Equal(t, 0, p.Writes(), "binding reads, it does not write")
}

func TestState_BindToOrderAvoidsStaleClamp(t *testing.T) {
	// Previous range [0,1] constrained; the new one [100,200] with value 150.
	s := binding.New("x")
	s.BindTo(memory.NewParameter(0.5, 0, 1, true))

	s.BindTo(memory.NewParameter(150, 100, 200, true))

	cfg := s.Config()
	assert.Equal(t, 150.0, cfg.Value)
	assert.Equal(t, 100.0, cfg.Min)
	assert.Equal(t, 200.0, cfg.Max)
}

func TestState_BindThenSetValueWritesThrough(t *testing.T) {
	for _, x := range []float64{0, 1.25, 3, 5} {
		p := memory.NewParameter(2, 0, 5, true)
		s := binding.New("x")
		s.BindTo(p)

		s.SetValue(x)
		assert.Equal(t, x, p.Value())
	}

	free := memory.NewParameter(2, 0, 5, false)
	s := binding.New("x")
	s.BindTo(free)
	s.SetValue(-40)
	assert.Equal(t, -40.0, free.Value())
}

func TestState_UnbindStopsWrites(t *testing.T) {
	p := memory.NewParameter(2, 0, 5, true)
	s := binding.New("x")
	s.BindTo(p)
	s.SetValue(3)

	s.Unbind()
	s.SetValue(4)

	assert.Equal(t, domain.ModeUnbound, s.Mode())
	assert.Equal(t, 3.0, p.Value())
	assert.Equal(t, 4.0, s.Value())
	assert.Equal(t, 5.0, s.Config().Max, "bounds stay as last observed")
}

func TestState_RebindDropsOldHandle(t *testing.T) {
	first := memory.NewParameter(1, 0, 5, false)
	second := memory.NewParameter(2, 0, 5, false)
	s := binding.New("x")

	s.BindTo(first)
	s.BindTo(second)
	s.SetValue(4)

	assert.Equal(t, 1.0, first.Value())
	assert.Equal(t, 4.0, second.Value())
	assert.Same(t, second, s.Handle())
}

func TestState_ResetRange(t *testing.T) {
	s := binding.New("x")
	s.BindTo(memory.NewParameter(2, 0, 5, true))
	s.Unbind()
	s.ResetRange()

	cfg := s.Config()
	assert.Equal(t, 0.0, cfg.Min)
	assert.Equal(t, 10.0, cfg.Max)
	assert.False(t, cfg.Constrained)
}

func TestState_LabelAndViewLifecycle(t *testing.T) {
	s := binding.New("before")
	s.SetLabel("ignored without view")

	view := &fakeView{}
	s.Attach(view)
	require.Equal(t, 1, view.configs)
	assert.Equal(t, "ignored without view", view.cfg.Label)

	s.SetLabel("after")
	assert.Equal(t, "after", view.cfg.Label)

	s.SetValue(7)
	assert.Equal(t, 7.0, view.value)

	s.Detach()
	s.SetValue(8)
	assert.Equal(t, 7.0, view.value)
}
