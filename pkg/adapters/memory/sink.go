package memory

import "sync"

// ErrorEntry is one failure reported to an ErrorSink.
type ErrorEntry struct {
	Component string
	Operation string
	Details   string
}

// ErrorSink implements ports.ErrorSink by recording entries.
type ErrorSink struct {
	mu      sync.Mutex
	entries []ErrorEntry
}

// NewErrorSink creates an empty sink.
func NewErrorSink() *ErrorSink {
	return &ErrorSink{}
}

func (s *ErrorSink) LogError(component, operation, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, ErrorEntry{Component: component, Operation: operation, Details: details})
}

// Entries returns a copy of the recorded entries.
func (s *ErrorSink) Entries() []ErrorEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ErrorEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Reset forgets every recorded entry.
func (s *ErrorSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
