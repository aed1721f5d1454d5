package paramlink_test

import (
	"context"
	"testing"

	"github.com/aretw0/paramlink"
	"github.com/aretw0/paramlink/pkg/adapters/memory"
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	scene   *memory.Scene
	reg     *memory.Registry
	widgets *memory.WidgetFactory
	sink    *memory.ErrorSink
	p1      *memory.Parameter
}

func newHarness() *harness {
	h := &harness{
		scene:   memory.NewScene(),
		reg:     memory.NewRegistry(),
		widgets: memory.NewWidgetFactory(),
		sink:    memory.NewErrorSink(),
		p1:      memory.NewParameter(2, 0, 5, true),
	}
	h.reg.Add("A", memory.NewObject().With("s1", memory.NewSubComponent().With("p1", h.p1)))
	h.reg.Add("B", memory.NewObject())
	return h
}

func (h *harness) host() paramlink.Host {
	return paramlink.Host{Registry: h.reg, Widgets: h.widgets, Errors: h.sink}
}

func (h *harness) newControl(opts ...paramlink.Option) *paramlink.Control {
	return paramlink.New(h.scene.Attachment, h.host(), opts...)
}

func TestControl_InitEnablesAndSeedsTargets(t *testing.T) {
	h := newHarness()
	ctl := h.newControl()

	st := ctl.State()
	assert.True(t, st.Attached)
	assert.Equal(t, domain.StateActive, st.Lifecycle)
	assert.Equal(t, []string{"", "A", "B"}, st.Target.Choices)
	assert.Equal(t, domain.ModeUnbound, st.Mode)
	assert.Equal(t, "My Slider", st.Value.Label)
	require.Len(t, h.widgets.Instances, 1)
	assert.Empty(t, h.sink.Entries())
	assert.NotEmpty(t, ctl.ID)
}

func TestControl_BindScenario(t *testing.T) {
	h := newHarness()
	ctl := h.newControl()

	ctl.SelectTarget("A")
	ctl.SelectSubTarget("s1")
	ctl.SelectParameter("p1")

	st := ctl.State()
	assert.Equal(t, domain.ModeBound, st.Mode)
	assert.Equal(t, domain.ValueConfig{Label: "My Slider", Value: 2, Min: 0, Max: 5, Default: 2, Constrained: true}, st.Value)

	w := h.widgets.Instances[0]
	assert.False(t, w.Config.Editable, "constrained parameters are not editable")
	assert.Equal(t, 5.0, w.Config.Max)

	ctl.SetValue(3)
	assert.Equal(t, 3.0, h.p1.Value())

	ctl.SelectTarget("")
	st = ctl.State()
	assert.Equal(t, "", st.SubTarget.Value)
	assert.Equal(t, "", st.Parameter.Value)
	assert.Equal(t, domain.ModeUnbound, st.Mode)

	ctl.SetValue(1)
	assert.Equal(t, 3.0, h.p1.Value(), "unbound edits must not reach the old parameter")
	assert.Empty(t, h.sink.Entries())
}

func TestControl_UserDragWritesThrough(t *testing.T) {
	h := newHarness()
	ctl := h.newControl()
	ctl.SelectTarget("A")
	ctl.SelectSubTarget("s1")
	ctl.SelectParameter("p1")

	h.widgets.Instances[0].Slider().Drag(4.5)

	assert.Equal(t, 4.5, h.p1.Value())
	assert.Equal(t, 4.5, ctl.State().Value.Value)
}

func TestControl_EnableDisableIdempotent(t *testing.T) {
	h := newHarness()
	ctl := h.newControl()

	ctl.Enable()
	ctl.Enable()
	assert.Len(t, h.widgets.Instances, 1)

	ctl.Disable()
	ctl.Disable()
	assert.Empty(t, h.widgets.Live())
	assert.Empty(t, h.sink.Entries())

	ctl.Enable()
	assert.Len(t, h.widgets.Live(), 1)
}

func TestControl_DestroyReleasesEverything(t *testing.T) {
	h := newHarness()
	ctl := h.newControl()
	require.Equal(t, 1, h.reg.Subscribers())

	ctl.Destroy()
	ctl.Destroy()

	assert.Empty(t, h.widgets.Live())
	assert.Equal(t, 0, h.reg.Subscribers())

	ctl.Enable()
	assert.Empty(t, h.widgets.Live(), "a destroyed control never comes back")
}

func TestControl_ContainerResolutionFailure(t *testing.T) {
	h := newHarness()
	bare := memory.AttachmentPoint(memory.NewNode("no-container"))

	ctl := paramlink.New(bare, h.host())

	entries := h.sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, paramlink.ComponentContainer, entries[0].Component)
	assert.Equal(t, "Init", entries[0].Operation)
	assert.False(t, ctl.State().Attached)

	ctl.Enable()
	ctl.Enable()
	assert.Empty(t, h.widgets.Instances)
	assert.Len(t, h.sink.Entries(), 1)
}

func TestControl_UnsupportedContainer(t *testing.T) {
	h := newHarness()
	root := memory.NewNode("person").WithContainer(memory.NewContainer("Person").WithSurface("canvas"))

	ctl := paramlink.New(memory.AttachmentPoint(root), h.host())
	require.Len(t, h.sink.Entries(), 1)
	assert.Contains(t, h.sink.Entries()[0].Details, "unsupported container type")
	assert.Equal(t, domain.StateInert, ctl.State().Lifecycle)

	accepting := paramlink.New(memory.AttachmentPoint(root), h.host(), paramlink.WithContainerType("Person"))
	assert.Equal(t, domain.StateActive, accepting.State().Lifecycle)
}

func TestControl_AllocationFailureIsLogged(t *testing.T) {
	h := newHarness()
	h.widgets.Fail = true

	ctl := h.newControl()

	entries := h.sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, paramlink.ComponentLifecycle, entries[0].Component)
	assert.Equal(t, "Enable", entries[0].Operation)
	assert.Equal(t, domain.StateInert, ctl.State().Lifecycle)

	h.widgets.Fail = false
	ctl.Enable()
	assert.Equal(t, domain.StateActive, ctl.State().Lifecycle)
}

func TestControl_FailedSelectionIsLoggedAndIgnored(t *testing.T) {
	h := newHarness()
	ctl := h.newControl()

	ctl.SelectTarget("nope")

	entries := h.sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, paramlink.ComponentSelector, entries[0].Component)
	assert.Equal(t, "SelectTarget", entries[0].Operation)
	assert.Equal(t, "", ctl.State().Target.Value)
}

func TestControl_RegistryMembershipUpdatesChoices(t *testing.T) {
	h := newHarness()
	ctl := h.newControl()
	ctl.SelectTarget("A")

	h.reg.Add("C", memory.NewObject())
	assert.Equal(t, []string{"", "A", "B", "C"}, ctl.State().Target.Choices)

	h.reg.Remove("A")
	st := ctl.State()
	assert.Equal(t, []string{"", "B", "C"}, st.Target.Choices)
	assert.Equal(t, "A", st.Target.Value, "the stale target is kept by default")
}

func TestControl_PruneMissingTarget(t *testing.T) {
	h := newHarness()
	ctl := h.newControl(paramlink.WithPruneMissingTarget(true))
	ctl.SelectTarget("A")
	ctl.SelectSubTarget("s1")
	ctl.SelectParameter("p1")

	h.reg.Remove("A")

	st := ctl.State()
	assert.Equal(t, "", st.Target.Value)
	assert.Equal(t, domain.ModeUnbound, st.Mode)
}

type panickyParam struct{ *memory.Parameter }

func (panickyParam) SetValue(float64) { panic("host exploded") }

type panickySub struct{ param ports.Parameter }

func (s panickySub) ListNumericParameterNames() []string { return []string{"p"} }
func (s panickySub) GetNumericParameter(name string) (ports.Parameter, bool) {
	return s.param, name == "p"
}

type panickyObject struct{ sub ports.SubComponent }

func (o panickyObject) ListSubComponentIDs() []string { return []string{"s"} }
func (o panickyObject) GetSubComponent(id string) (ports.SubComponent, bool) {
	return o.sub, id == "s"
}

type panickyRegistry struct{ *memory.Registry }

func (r panickyRegistry) GetObject(id string) (ports.Object, bool) {
	if id == "P" {
		return panickyObject{sub: panickySub{param: panickyParam{memory.NewParameter(1, 0, 2, false)}}}, true
	}
	return r.Registry.GetObject(id)
}

func TestControl_PanicsAreContained(t *testing.T) {
	h := newHarness()
	h.reg.Add("P", memory.NewObject())
	host := h.host()
	host.Registry = panickyRegistry{h.reg}

	var errs []*domain.ErrorEvent
	ctl := paramlink.New(h.scene.Attachment, host, paramlink.WithLifecycleHooks(domain.LifecycleHooks{
		OnError: func(e *domain.ErrorEvent) { errs = append(errs, e) },
	}))

	ctl.SelectTarget("P")
	ctl.SelectSubTarget("s")
	ctl.SelectParameter("p")
	require.Equal(t, domain.ModeBound, ctl.State().Mode)

	assert.NotPanics(t, func() { ctl.SetValue(1.5) })

	require.Len(t, errs, 1)
	assert.Equal(t, paramlink.ComponentBinding, errs[0].Component)
	assert.Equal(t, "SetValue", errs[0].Op)
	var pe *domain.PanicError
	assert.ErrorAs(t, errs[0].Err, &pe)
	assert.Equal(t, "host exploded", pe.Value)

	require.Len(t, h.sink.Entries(), 1)
	assert.Equal(t, "SetValue", h.sink.Entries()[0].Operation)
}

func TestControl_Hooks(t *testing.T) {
	h := newHarness()
	var (
		selected []string
		bound    []*domain.BindingEvent
		unbound  int
		acquired int
		released int
	)
	ctl := h.newControl(paramlink.WithLifecycleHooks(domain.LifecycleHooks{
		OnSelect:  func(e *domain.SelectionEvent) { selected = append(selected, e.Level.String()+"="+e.Value) },
		OnBind:    func(e *domain.BindingEvent) { bound = append(bound, e) },
		OnUnbind:  func(*domain.BindingEvent) { unbound++ },
		OnAcquire: func(*domain.WidgetEvent) { acquired++ },
		OnRelease: func(*domain.WidgetEvent) { released++ },
	}), paramlink.WithID("ctl-1"))

	ctl.SelectTarget("A")
	ctl.SelectSubTarget("s1")
	ctl.SelectParameter("p1")
	ctl.SelectSubTarget("")
	ctl.Disable()
	ctl.Disable()

	assert.Equal(t, []string{"target=A", "subtarget=s1", "parameter=p1", "subtarget=", "parameter="}, selected)
	require.Len(t, bound, 1)
	assert.Equal(t, "ctl-1", bound[0].ControlID)
	assert.Equal(t, "p1", bound[0].Parameter)
	assert.Equal(t, 5.0, bound[0].Config.Max)
	assert.Equal(t, 1, unbound)
	assert.Equal(t, 1, acquired)
	assert.Equal(t, 1, released)
}

func TestControl_LabelPushesToWidget(t *testing.T) {
	h := newHarness()
	ctl := h.newControl(paramlink.WithLabel("Brightness"))
	w := h.widgets.Instances[0]
	assert.Equal(t, "Brightness", w.Config.Label)

	ctl.SetLabel("Dimmer")
	assert.Equal(t, "Dimmer", w.Config.Label)
}

func TestControl_RefreshRereadsRemote(t *testing.T) {
	h := newHarness()
	ctl := h.newControl()
	ctl.SelectTarget("A")
	ctl.SelectSubTarget("s1")
	ctl.SelectParameter("p1")

	h.p1.SetValue(4)
	assert.Equal(t, 2.0, ctl.State().Value.Value, "no polling")

	ctl.Refresh()
	assert.Equal(t, 4.0, ctl.State().Value.Value)
}

func TestControl_SnapshotRoundTrip(t *testing.T) {
	h := newHarness()
	store := memory.NewStore()
	ctx := context.Background()

	first := h.newControl(paramlink.WithStore(store), paramlink.WithID("sign-1"))
	first.SetLabel("Intensity")
	first.SelectTarget("A")
	first.SelectSubTarget("s1")
	first.SelectParameter("p1")
	first.SetValue(4)
	require.NoError(t, first.Save(ctx))
	first.Destroy()

	h.p1.SetValue(1)

	second := h.newControl(paramlink.WithStore(store), paramlink.WithID("sign-1"))
	require.NoError(t, second.Load(ctx))

	st := second.State()
	assert.Equal(t, "Intensity", st.Value.Label)
	assert.Equal(t, "p1", st.Parameter.Value)
	assert.Equal(t, domain.ModeBound, st.Mode)
	assert.Equal(t, 1.0, st.Value.Value, "the remote value wins over the persisted one")
	assert.Equal(t, 1.0, h.p1.Value())
}

func TestControl_RestoreDoesNotWriteToPreviousBinding(t *testing.T) {
	h := newHarness()
	ctl := h.newControl()
	ctl.SelectTarget("A")
	ctl.SelectSubTarget("s1")
	ctl.SelectParameter("p1")
	ctl.SetValue(3)

	ctl.Restore(domain.Snapshot{Label: "x", Value: 1})

	assert.Equal(t, 3.0, h.p1.Value(), "restoring must not touch the parameter it unbinds from")
	st := ctl.State()
	assert.Equal(t, domain.ModeUnbound, st.Mode)
	assert.Equal(t, "", st.Target.Value)
	assert.Equal(t, 1.0, st.Value.Value)
	assert.Equal(t, "x", st.Value.Label)
	assert.Empty(t, h.sink.Entries())
}

func TestControl_RestoreSameChainKeepsRemoteValue(t *testing.T) {
	h := newHarness()
	ctl := h.newControl()
	ctl.SelectTarget("A")
	ctl.SelectSubTarget("s1")
	ctl.SelectParameter("p1")
	ctl.SetValue(3)

	ctl.Restore(domain.Snapshot{Label: "x", Value: 1, Target: "A", SubTarget: "s1", Parameter: "p1"})

	assert.Equal(t, 3.0, h.p1.Value())
	assert.Equal(t, domain.ModeBound, ctl.State().Mode)
	assert.Equal(t, 3.0, ctl.State().Value.Value)
}

func TestControl_LoadWithoutSnapshot(t *testing.T) {
	h := newHarness()
	ctl := h.newControl(paramlink.WithStore(memory.NewStore()))

	assert.ErrorIs(t, ctl.Load(context.Background()), domain.ErrSnapshotNotFound)

	bare := h.newControl()
	assert.ErrorIs(t, bare.Save(context.Background()), paramlink.ErrNoStore)
}

func TestControl_PanickingDragIsContained(t *testing.T) {
	h := newHarness()
	h.reg.Add("P", memory.NewObject())
	host := h.host()
	host.Registry = panickyRegistry{h.reg}
	ctl := paramlink.New(h.scene.Attachment, host)

	ctl.SelectTarget("P")
	ctl.SelectSubTarget("s")
	ctl.SelectParameter("p")

	assert.NotPanics(t, func() { h.widgets.Instances[0].Slider().Drag(2) })
	require.Len(t, h.sink.Entries(), 1)
	assert.Contains(t, h.sink.Entries()[0].Details, "host exploded")
}
