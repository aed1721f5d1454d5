/*
Package ports defines the driven ports (interfaces) through which a paramlink control
talks to its host.

These interfaces decouple the control from the host's scene runtime, allowing it to be
embedded in any environment that can expose an object registry, a scene graph and a
widget factory.

# Key Interfaces

  - Registry: Lists and resolves objects and broadcasts membership changes.
  - Object, SubComponent, Parameter: The three resolution steps down to one remote value.
  - Node, Container, Surface: The scene graph the control is attached to.
  - WidgetFactory, Widget, SliderControl: The on-screen slider.
  - ErrorSink: Where operation boundaries report swallowed failures.
  - SnapshotStore: Persists the control's primitive fields.
*/
package ports
