package domain

// AttachmentDepth is the number of ownership levels between the control's
// attachment point and its enclosing container in the host scene graph.
const AttachmentDepth = 5

// ContainerType is the only container type a control may be attached to.
const ContainerType = "SimpleSign"

// DefaultLabel is the label a freshly created control shows.
const DefaultLabel = "My Slider"

// Free range used while no parameter is bound.
const (
	FreeRangeMin  = 0.0
	FreeRangeMax  = 10.0
	DefaultValue  = 0.0
	DefaultFormat = "%.2f"
)

// WidgetOffset is applied to every slider widget once it is attached to a surface.
var WidgetOffset = Offset{Down: 0.3, Right: 0.35}

// Field constants for persisted snapshots.
const (
	KeyLabel     = "label"
	KeyValue     = "value"
	KeyTarget    = "target"
	KeySubTarget = "subtarget"
	KeyParameter = "parameter"
)
