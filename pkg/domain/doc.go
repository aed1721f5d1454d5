/*
Package domain contains the core types shared by the paramlink control and its adapters.

It defines the selection levels, the binding and lifecycle modes, the values pushed to
widgets, the persisted snapshot, and the error taxonomy. This package is kept pure and
free of host dependencies like widgets, registries or persistence.

# Key Entities

  - Level: One of the three cascading selection levels (Target, SubTarget, Parameter).
  - ValueConfig: The local editable value with its bounds and constraint flag.
  - WidgetConfig: What a slider widget displays, derived from a ValueConfig.
  - Snapshot: The primitive fields a host persists for a control.
  - ControlState: A read-only view of the whole control for presenters.
*/
package domain
