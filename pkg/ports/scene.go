package ports

// Node is a position in the host scene graph.
type Node interface {
	// Parent returns the owning node, or false at the root.
	Parent() (Node, bool)

	// Container returns the node's container capability, if it has one.
	Container() (Container, bool)
}

// Container is an enclosing host object a control can be attached beneath.
type Container interface {
	// Type returns the declared container type.
	Type() string

	// Surface locates a visual surface widgets can be attached to.
	Surface() (Surface, bool)
}

// Surface is a visual surface owned by a container.
type Surface interface {
	Name() string
}
