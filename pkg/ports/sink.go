package ports

// ErrorSink receives failures swallowed at operation boundaries.
type ErrorSink interface {
	LogError(component, operation, details string)
}
