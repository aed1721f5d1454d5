package tui

import (
	"fmt"
	"sync"
)

// StatusSink is an ErrorSink that keeps the last failure for the status line.
type StatusSink struct {
	mu    sync.Mutex
	last  string
	count int
}

func (s *StatusSink) LogError(component, operation, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = fmt.Sprintf("%s.%s: %s", component, operation, details)
	s.count++
}

// Last returns the latest failure and how many were reported in total.
func (s *StatusSink) Last() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.count
}
