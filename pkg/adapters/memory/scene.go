package memory

import (
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/ports"
)

// Node implements ports.Node.
type Node struct {
	Name      string
	parent    *Node
	container *Container
}

// NewNode creates a root node.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Child creates a node owned by n.
func (n *Node) Child(name string) *Node {
	return &Node{Name: name, parent: n}
}

// WithContainer gives the node a container capability.
func (n *Node) WithContainer(c *Container) *Node {
	n.container = c
	return n
}

func (n *Node) Parent() (ports.Node, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func (n *Node) Container() (ports.Container, bool) {
	if n.container == nil {
		return nil, false
	}
	return n.container, true
}

// AttachmentPoint returns a node that sits domain.AttachmentDepth levels below root,
// which is where a host mounts a control beneath its container.
func AttachmentPoint(root *Node) *Node {
	n := root
	for i := 0; i < domain.AttachmentDepth; i++ {
		n = n.Child("level")
	}
	return n
}

// Container implements ports.Container.
type Container struct {
	kind    string
	surface *Surface
}

// NewContainer creates a container of the given type without a surface.
func NewContainer(kind string) *Container {
	return &Container{kind: kind}
}

// WithSurface gives the container a visual surface.
func (c *Container) WithSurface(name string) *Container {
	c.surface = &Surface{name: name}
	return c
}

func (c *Container) Type() string { return c.kind }

func (c *Container) Surface() (ports.Surface, bool) {
	if c.surface == nil {
		return nil, false
	}
	return c.surface, true
}

// Surface implements ports.Surface.
type Surface struct {
	name string
}

func (s *Surface) Name() string { return s.name }

// Scene bundles an attachment node with the container above it.
type Scene struct {
	Root       *Node
	Container  *Container
	Attachment *Node
}

// NewScene builds a valid scene: a SimpleSign container with a canvas surface
// and an attachment point at the expected depth.
func NewScene() *Scene {
	c := NewContainer(domain.ContainerType).WithSurface("canvas")
	root := NewNode("sign").WithContainer(c)
	return &Scene{Root: root, Container: c, Attachment: AttachmentPoint(root)}
}
