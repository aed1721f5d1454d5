package lifecycle_test

import (
	"testing"

	"github.com/aretw0/paramlink/internal/binding"
	"github.com/aretw0/paramlink/internal/lifecycle"
	"github.com/aretw0/paramlink/pkg/adapters/memory"
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLifecycle() (*lifecycle.Lifecycle, *memory.WidgetFactory, *binding.State) {
	scene := memory.NewScene()
	factory := memory.NewWidgetFactory()
	b := binding.New("Volume")
	return lifecycle.New(scene.Container, factory, b), factory, b
}

func TestLifecycle_EnableTwiceMakesOneWidget(t *testing.T) {
	l, factory, _ := newLifecycle()

	require.NoError(t, l.Enable())
	require.NoError(t, l.Enable())

	assert.Len(t, factory.Instances, 1)
	assert.Equal(t, domain.StateActive, l.State())
	assert.Equal(t, "canvas", l.Surface().Name())
}

func TestLifecycle_EnablePushesConfiguration(t *testing.T) {
	l, factory, b := newLifecycle()
	b.SetValue(4)

	require.NoError(t, l.Enable())

	w := factory.Instances[0]
	assert.Equal(t, "Volume", w.Config.Label)
	assert.Equal(t, 10.0, w.Config.Max)
	assert.True(t, w.Config.Editable)
	assert.Equal(t, 4.0, w.Slider().Value)
	assert.Equal(t, domain.WidgetOffset, w.Offset)
	assert.True(t, w.Slider().Connected())
}

func TestLifecycle_DragUpdatesBinding(t *testing.T) {
	l, factory, b := newLifecycle()
	p := memory.NewParameter(1, 0, 5, true)
	b.BindTo(p)
	require.NoError(t, l.Enable())

	factory.Instances[0].Slider().Drag(3.5)

	assert.Equal(t, 3.5, b.Value())
	assert.Equal(t, 3.5, p.Value())
}

func TestLifecycle_DisableIsIdempotent(t *testing.T) {
	l, factory, b := newLifecycle()

	require.NoError(t, l.Disable(), "never enabled")

	require.NoError(t, l.Enable())
	w := factory.Instances[0]
	slider := w.Slider()

	require.NoError(t, l.Disable())
	require.NoError(t, l.Disable())

	assert.True(t, w.Destroyed)
	assert.False(t, slider.Connected())
	assert.Equal(t, domain.StateInert, l.State())
	assert.Empty(t, factory.Live())

	b.SetLabel("after disable")
	assert.NotEqual(t, "after disable", w.Config.Label, "detached widget must not receive pushes")
}

func TestLifecycle_ReenableMakesFreshWidget(t *testing.T) {
	l, factory, _ := newLifecycle()

	require.NoError(t, l.Enable())
	require.NoError(t, l.Destroy())
	require.NoError(t, l.Enable())

	assert.Len(t, factory.Instances, 2)
	assert.Len(t, factory.Live(), 1)
}

func TestLifecycle_NoContainerStaysInert(t *testing.T) {
	factory := memory.NewWidgetFactory()
	l := lifecycle.New(nil, factory, binding.New("x"))

	require.NoError(t, l.Enable())
	assert.Equal(t, domain.StateInert, l.State())
	assert.Empty(t, factory.Instances)
}

func TestLifecycle_MissingSurface(t *testing.T) {
	factory := memory.NewWidgetFactory()
	l := lifecycle.New(memory.NewContainer(domain.ContainerType), factory, binding.New("x"))

	assert.ErrorIs(t, l.Enable(), domain.ErrNotFound)
	assert.Equal(t, domain.StateInert, l.State())
}

func TestLifecycle_AllocationFailures(t *testing.T) {
	l, factory, _ := newLifecycle()

	factory.Fail = true
	assert.ErrorIs(t, l.Enable(), domain.ErrAllocationFailed)
	assert.Equal(t, domain.StateInert, l.State())

	factory.Fail = false
	factory.NoControl = true
	assert.ErrorIs(t, l.Enable(), domain.ErrAllocationFailed)
	require.Len(t, factory.Instances, 1)
	assert.True(t, factory.Instances[0].Destroyed, "a widget without a slider is not leaked")
	assert.Equal(t, domain.StateInert, l.State())
}

func TestLifecycle_OnEditReroutesDrags(t *testing.T) {
	l, factory, b := newLifecycle()
	var edits []float64
	l.OnEdit(func(v float64) { edits = append(edits, v) })

	require.NoError(t, l.Enable())
	factory.Instances[0].Slider().Drag(7)

	assert.Equal(t, []float64{7}, edits)
	assert.Equal(t, 0.0, b.Value(), "the handler owns the edit")
}

// shakyFactory hands out memory widgets whose Translate panics while armed.
type shakyFactory struct {
	*memory.WidgetFactory
	armed bool
}

func (f *shakyFactory) InstantiateSlider(surface ports.Surface) ports.Widget {
	w := f.WidgetFactory.InstantiateSlider(surface)
	if w == nil {
		return nil
	}
	return shakyWidget{Widget: w.(*memory.Widget), armed: f.armed}
}

type shakyWidget struct {
	*memory.Widget
	armed bool
}

func (w shakyWidget) Translate(offset domain.Offset) {
	if w.armed {
		panic("translate exploded")
	}
	w.Widget.Translate(offset)
}

func TestLifecycle_PanicDuringEnableReleasesWidget(t *testing.T) {
	scene := memory.NewScene()
	factory := &shakyFactory{WidgetFactory: memory.NewWidgetFactory(), armed: true}
	b := binding.New("Volume")
	l := lifecycle.New(scene.Container, factory, b)

	assert.Panics(t, func() { _ = l.Enable() })
	assert.Equal(t, domain.StateInert, l.State())
	require.Len(t, factory.Instances, 1)
	assert.True(t, factory.Instances[0].Destroyed)
	assert.False(t, factory.Instances[0].Slider().Connected())
	assert.Empty(t, factory.Live())

	b.SetValue(7)
	assert.Equal(t, 0.0, factory.Instances[0].Slider().Value, "the released widget is no longer fed")

	factory.armed = false
	require.NoError(t, l.Enable())
	assert.Equal(t, domain.StateActive, l.State())
	assert.Len(t, factory.Live(), 1, "at most one live widget")
}
