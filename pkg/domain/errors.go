package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced object, sub-component, parameter,
// container or surface does not exist at resolution time.
var ErrNotFound = errors.New("not found")

// ErrUnsupportedContainerType is returned when the control is attached below a
// container whose type is not accepted.
var ErrUnsupportedContainerType = errors.New("unsupported container type")

// ErrAllocationFailed is returned when the widget factory cannot produce a slider.
var ErrAllocationFailed = errors.New("widget allocation failed")

// ErrSnapshotNotFound is returned when a control ID cannot be found in a store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// OpError tags an error with the component and operation that raised it.
type OpError struct {
	Component string
	Op        string
	Err       error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Component, e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// PanicError represents a panic recovered at an operation boundary.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
