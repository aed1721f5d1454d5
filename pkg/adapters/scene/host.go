package scene

import (
	"github.com/aretw0/paramlink/pkg/adapters/memory"
)

// Host is a scene built from a fixture.
type Host struct {
	Registry *memory.Registry
	Scene    *memory.Scene
	// Parameters indexes every parameter by "object/component/name".
	Parameters map[string]*memory.Parameter
}

// Key returns the Parameters index key of a parameter.
func Key(object, component, name string) string {
	return object + "/" + component + "/" + name
}

// Build creates the in-memory registry and scene graph described by the fixture.
func (f *Fixture) Build() *Host {
	h := &Host{
		Registry:   memory.NewRegistry(),
		Parameters: make(map[string]*memory.Parameter),
	}

	c := memory.NewContainer(f.Container.Type)
	if f.Container.Surface != "" {
		c.WithSurface(f.Container.Surface)
	}
	root := memory.NewNode("root").WithContainer(c)
	h.Scene = &memory.Scene{Root: root, Container: c, Attachment: memory.AttachmentPoint(root)}

	for _, o := range f.Objects {
		obj := memory.NewObject()
		for _, comp := range o.Components {
			sub := memory.NewSubComponent()
			for _, ps := range comp.Parameters {
				p := memory.NewParameter(ps.Default, ps.Min, ps.Max, ps.Constrained)
				if ps.Value != nil {
					p.SetValue(*ps.Value)
				}
				sub.With(ps.Name, p)
				h.Parameters[Key(o.ID, comp.ID, ps.Name)] = p
			}
			obj.With(comp.ID, sub)
		}
		h.Registry.Add(o.ID, obj)
	}
	return h
}

// Demo is the scene used when no fixture is given.
func Demo() *Fixture {
	f, err := Parse([]byte(demo))
	if err != nil {
		panic(err)
	}
	return f
}

const demo = `
container:
  type: SimpleSign
  surface: canvas
objects:
  - id: lamp
    components:
      - id: bulb
        parameters:
          - {name: brightness, default: 0.5, min: 0, max: 1, constrained: true}
          - {name: temperature, default: 4000, min: 1800, max: 6500, constrained: true}
  - id: speaker
    components:
      - id: amp
        parameters:
          - {name: gain, default: 2, min: 0, max: 5, constrained: true}
          - {name: balance, default: 0, min: -1, max: 1, constrained: false}
      - id: eq
        parameters:
          - {name: bass, default: 0, min: -12, max: 12, constrained: true}
          - {name: treble, default: 0, min: -12, max: 12, constrained: true}
`
