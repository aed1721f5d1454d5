package memory

import (
	"slices"
	"sync"

	"github.com/aretw0/paramlink/pkg/ports"
)

// Registry implements ports.Registry in memory.
// Membership changes are broadcast synchronously, after the lock is released.
type Registry struct {
	mu      sync.RWMutex
	ids     []string
	objects map[string]*Object
	subs    []subscription
	nextSub int
}

type subscription struct {
	id int
	fn func([]string)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		objects: make(map[string]*Object),
	}
}

// Add registers an object. Re-adding an existing ID replaces the object in place.
func (r *Registry) Add(id string, obj *Object) {
	r.mu.Lock()
	if _, ok := r.objects[id]; !ok {
		r.ids = append(r.ids, id)
	}
	r.objects[id] = obj
	r.mu.Unlock()

	r.notify()
}

// Remove unregisters an object. Removing an unknown ID does nothing.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	if _, ok := r.objects[id]; !ok {
		r.mu.Unlock()
		return
	}
	delete(r.objects, id)
	r.ids = slices.DeleteFunc(r.ids, func(s string) bool { return s == id })
	r.mu.Unlock()

	r.notify()
}

// ListObjectIDs returns the registered IDs in insertion order.
func (r *Registry) ListObjectIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ids)
}

// GetObject resolves an object by ID.
func (r *Registry) GetObject(id string) (ports.Object, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	obj, ok := r.objects[id]
	if !ok {
		return nil, false
	}
	return obj, true
}

// Subscribe registers a membership handler.
func (r *Registry) Subscribe(handler func([]string)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSub++
	id := r.nextSub
	r.subs = append(r.subs, subscription{id: id, fn: handler})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.subs = slices.DeleteFunc(r.subs, func(s subscription) bool { return s.id == id })
	}
}

// Subscribers returns the number of live subscriptions.
func (r *Registry) Subscribers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

func (r *Registry) notify() {
	r.mu.RLock()
	ids := slices.Clone(r.ids)
	subs := slices.Clone(r.subs)
	r.mu.RUnlock()

	for _, s := range subs {
		s.fn(slices.Clone(ids))
	}
}

// Object implements ports.Object with ordered sub-components.
type Object struct {
	order []string
	subs  map[string]*SubComponent
}

// NewObject creates an object without sub-components.
func NewObject() *Object {
	return &Object{subs: make(map[string]*SubComponent)}
}

// With adds a sub-component and returns the object for chaining.
func (o *Object) With(id string, sub *SubComponent) *Object {
	if _, ok := o.subs[id]; !ok {
		o.order = append(o.order, id)
	}
	o.subs[id] = sub
	return o
}

// Drop removes a sub-component.
func (o *Object) Drop(id string) {
	delete(o.subs, id)
	o.order = slices.DeleteFunc(o.order, func(s string) bool { return s == id })
}

func (o *Object) ListSubComponentIDs() []string {
	return slices.Clone(o.order)
}

func (o *Object) GetSubComponent(id string) (ports.SubComponent, bool) {
	sub, ok := o.subs[id]
	if !ok {
		return nil, false
	}
	return sub, true
}

// SubComponent implements ports.SubComponent with ordered parameters.
type SubComponent struct {
	order  []string
	params map[string]*Parameter
}

// NewSubComponent creates a sub-component without parameters.
func NewSubComponent() *SubComponent {
	return &SubComponent{params: make(map[string]*Parameter)}
}

// With adds a parameter and returns the sub-component for chaining.
func (s *SubComponent) With(name string, p *Parameter) *SubComponent {
	if _, ok := s.params[name]; !ok {
		s.order = append(s.order, name)
	}
	s.params[name] = p
	return s
}

// Drop removes a parameter.
func (s *SubComponent) Drop(name string) {
	delete(s.params, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
}

func (s *SubComponent) ListNumericParameterNames() []string {
	return slices.Clone(s.order)
}

func (s *SubComponent) GetNumericParameter(name string) (ports.Parameter, bool) {
	p, ok := s.params[name]
	if !ok {
		return nil, false
	}
	return p, true
}

// Parameter implements ports.Parameter.
// Like a host float field, a constrained parameter clamps written values.
type Parameter struct {
	mu          sync.Mutex
	value       float64
	min         float64
	max         float64
	def         float64
	constrained bool
	writes      int
}

// NewParameter creates a parameter whose current value is its default.
func NewParameter(def, min, max float64, constrained bool) *Parameter {
	return &Parameter{value: def, min: min, max: max, def: def, constrained: constrained}
}

func (p *Parameter) Value() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

func (p *Parameter) SetValue(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.constrained {
		v = min(max(v, p.min), p.max)
	}
	p.value = v
	p.writes++
}

// Writes returns how many times SetValue was called.
func (p *Parameter) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

func (p *Parameter) Min() float64      { return p.min }
func (p *Parameter) Max() float64      { return p.max }
func (p *Parameter) Default() float64  { return p.def }
func (p *Parameter) Constrained() bool { return p.constrained }
