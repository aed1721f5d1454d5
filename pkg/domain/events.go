package domain

// SelectionEvent is emitted when a level's selection is committed.
type SelectionEvent struct {
	ControlID string
	Level     Level
	Value     string
}

// BindingEvent is emitted when the control binds to or unbinds from a parameter.
type BindingEvent struct {
	ControlID string
	Target    string
	SubTarget string
	Parameter string
	Config    ValueConfig
}

// WidgetEvent is emitted when the widget instance is acquired or released.
type WidgetEvent struct {
	ControlID string
	Surface   string
}

// ErrorEvent is emitted when an operation boundary swallows an error.
type ErrorEvent struct {
	ControlID string
	Component string
	Op        string
	Err       error
}

// LifecycleHooks defines callbacks for control observability.
// All hooks run synchronously on the caller's goroutine.
type LifecycleHooks struct {
	OnSelect  func(*SelectionEvent)
	OnBind    func(*BindingEvent)
	OnUnbind  func(*BindingEvent)
	OnAcquire func(*WidgetEvent)
	OnRelease func(*WidgetEvent)
	OnError   func(*ErrorEvent)
}
