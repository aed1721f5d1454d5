// Package scene loads host scenes from YAML fixtures into the in-memory adapters.
//
// A fixture describes the container a control attaches to, the registry of
// objects with their sub-components and numeric parameters, and optionally a
// control snapshot to restore once the scene is built:
//
//	container:
//	  type: SimpleSign
//	  surface: canvas
//	objects:
//	  - id: lamp
//	    components:
//	      - id: bulb
//	        parameters:
//	          - {name: brightness, default: 0.5, min: 0, max: 1, constrained: true}
//	control:
//	  label: Lamp
//	  target: lamp
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidFixture is returned when a fixture is structurally wrong.
var ErrInvalidFixture = errors.New("invalid scene fixture")

// Fixture is a decoded scene description.
type Fixture struct {
	Container ContainerSpec    `mapstructure:"container"`
	Objects   []ObjectSpec     `mapstructure:"objects"`
	Control   *domain.Snapshot `mapstructure:"control"`
}

// ContainerSpec describes the container above the attachment point.
type ContainerSpec struct {
	Type    string `mapstructure:"type"`
	Surface string `mapstructure:"surface"`
}

// ObjectSpec is a registry object.
type ObjectSpec struct {
	ID         string          `mapstructure:"id"`
	Components []ComponentSpec `mapstructure:"components"`
}

// ComponentSpec is a sub-component of an object.
type ComponentSpec struct {
	ID         string          `mapstructure:"id"`
	Parameters []ParameterSpec `mapstructure:"parameters"`
}

// ParameterSpec is a numeric parameter. Value defaults to Default when omitted.
type ParameterSpec struct {
	Name        string   `mapstructure:"name"`
	Value       *float64 `mapstructure:"value"`
	Default     float64  `mapstructure:"default"`
	Min         float64  `mapstructure:"min"`
	Max         float64  `mapstructure:"max"`
	Constrained bool     `mapstructure:"constrained"`
}

// LoadFile reads and parses a fixture file.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML fixture.
func Parse(data []byte) (*Fixture, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return Decode(raw)
}

// Decode builds a fixture from a generic map, as produced by YAML or JSON
// decoders. Unknown keys are rejected.
func Decode(raw map[string]any) (*Fixture, error) {
	var f Fixture
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &f,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}

	if f.Container.Type == "" {
		f.Container.Type = domain.ContainerType
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	objects := make(map[string]bool)
	for _, o := range f.Objects {
		if o.ID == "" {
			return fmt.Errorf("%w: object without id", ErrInvalidFixture)
		}
		if objects[o.ID] {
			return fmt.Errorf("%w: duplicate object %q", ErrInvalidFixture, o.ID)
		}
		objects[o.ID] = true

		for _, c := range o.Components {
			if c.ID == "" {
				return fmt.Errorf("%w: component without id in object %q", ErrInvalidFixture, o.ID)
			}
			for _, p := range c.Parameters {
				if p.Name == "" {
					return fmt.Errorf("%w: parameter without name in %s/%s", ErrInvalidFixture, o.ID, c.ID)
				}
				if p.Constrained && p.Min > p.Max {
					return fmt.Errorf("%w: %s/%s/%s has min > max", ErrInvalidFixture, o.ID, c.ID, p.Name)
				}
			}
		}
	}
	return nil
}
