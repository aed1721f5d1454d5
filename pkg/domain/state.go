package domain

// Level identifies one of the three cascading selection levels.
type Level int

const (
	LevelTarget Level = iota
	LevelSubTarget
	LevelParameter
)

func (l Level) String() string {
	switch l {
	case LevelTarget:
		return "target"
	case LevelSubTarget:
		return "subtarget"
	case LevelParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// Mode tells whether the local value mirrors a remote parameter.
type Mode string

const (
	ModeUnbound Mode = "unbound" // Free, user-controlled range
	ModeBound   Mode = "bound"   // Mirrors and pushes to a remote parameter
)

// LifecycleState is the widget ownership state of a control.
type LifecycleState string

const (
	StateInert  LifecycleState = "inert"  // No widget instance
	StateActive LifecycleState = "active" // Exactly one widget instance
)

// ValueConfig is the local editable value and its bounds.
type ValueConfig struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Default     float64 `json:"default"`
	Constrained bool    `json:"constrained"`
}

// WidgetConfig is the full configuration pushed to a slider widget.
type WidgetConfig struct {
	Label       string
	Min         float64
	Max         float64
	Default     float64
	Constrained bool
	Precision   string
	Visible     bool
	Editable    bool
}

// Offset is a positional offset in the widget's local space.
type Offset struct {
	Down  float64
	Right float64
}

// Selection is the current value and choice set of one level.
type Selection struct {
	Value   string   `json:"value"`
	Choices []string `json:"choices"`
}

// ControlState is a read-only view of a control, used by presenters.
type ControlState struct {
	ID        string         `json:"id"`
	Target    Selection      `json:"target"`
	SubTarget Selection      `json:"subtarget"`
	Parameter Selection      `json:"parameter"`
	Value     ValueConfig    `json:"value"`
	Mode      Mode           `json:"mode"`
	Lifecycle LifecycleState `json:"lifecycle"`
	Attached  bool           `json:"attached"`
}

// Snapshot holds the primitive fields a host persists for a control.
type Snapshot struct {
	Label     string  `json:"label" yaml:"label" mapstructure:"label"`
	Value     float64 `json:"value" yaml:"value" mapstructure:"value"`
	Target    string  `json:"target" yaml:"target" mapstructure:"target"`
	SubTarget string  `json:"subtarget" yaml:"subtarget" mapstructure:"subtarget"`
	Parameter string  `json:"parameter" yaml:"parameter" mapstructure:"parameter"`
}
