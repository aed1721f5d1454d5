// Package container locates the container a control is attached beneath.
package container

import (
	"fmt"

	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
)

// WalkUp follows levels ownership links upward from start.
// It fails with domain.ErrNotFound if any intermediate level is absent.
func WalkUp(start ports.Node, levels int) (ports.Node, error) {
	if start == nil {
		return nil, fmt.Errorf("attachment node: %w", domain.ErrNotFound)
	}
	n := start
	for i := 0; i < levels; i++ {
		parent, ok := n.Parent()
		if !ok || parent == nil {
			return nil, fmt.Errorf("ancestor %d of %d: %w", i+1, levels, domain.ErrNotFound)
		}
		n = parent
	}
	return n, nil
}

// Resolve returns the container domain.AttachmentDepth levels above start,
// provided it declares the accepted type.
func Resolve(start ports.Node, accepted string) (ports.Container, error) {
	n, err := WalkUp(start, domain.AttachmentDepth)
	if err != nil {
		return nil, fmt.Errorf("could not find the parent node: %w", err)
	}

	c, ok := n.Container()
	if !ok || c == nil {
		return nil, fmt.Errorf("could not find the parent container: %w", domain.ErrNotFound)
	}

	if c.Type() != accepted {
		return nil, fmt.Errorf("can only be applied on %s, got %q: %w", accepted, c.Type(), domain.ErrUnsupportedContainerType)
	}

	return c, nil
}
