package ports

// Registry is the host's process-wide object registry.
type Registry interface {
	// ListObjectIDs returns the IDs of all live objects, in host order.
	ListObjectIDs() []string

	// GetObject resolves an object by ID.
	GetObject(id string) (Object, bool)

	// Subscribe registers a handler for membership changes.
	// The handler receives the full, ordered membership list.
	// The returned func removes the handler.
	Subscribe(handler func(ids []string)) (unsubscribe func())
}

// Object is a live object exposing named sub-components.
type Object interface {
	ListSubComponentIDs() []string
	GetSubComponent(id string) (SubComponent, bool)
}

// SubComponent is a named part of an object exposing numeric parameters.
type SubComponent interface {
	ListNumericParameterNames() []string
	GetNumericParameter(name string) (Parameter, bool)
}

// Parameter is a live handle to one externally-owned numeric parameter.
// The control never owns it: clearing a reference must not destroy it.
type Parameter interface {
	Value() float64
	SetValue(v float64)
	Min() float64
	Max() float64
	Default() float64
	Constrained() bool
}
