// Package selector implements the three-level cascading choice of a remote parameter:
// Target object, then one of its sub-components, then one of that sub-component's
// numeric parameters.
package selector

import (
	"slices"

	"github.com/aretw0/paramlink/pkg/domain"
)

// None is the empty choice every level offers first.
const None = ""

// Chooser is one level of the cascade: a selection and the choices it may take.
type Chooser struct {
	level   domain.Level
	value   string
	choices []string
}

func newChooser(level domain.Level) *Chooser {
	return &Chooser{level: level, choices: []string{None}}
}

// Level returns which level this chooser represents.
func (c *Chooser) Level() domain.Level { return c.level }

// Value returns the current selection, None when nothing is selected.
func (c *Chooser) Value() string { return c.value }

// Choices returns a copy of the choice set, None first.
func (c *Chooser) Choices() []string { return slices.Clone(c.choices) }

// Contains reports whether v is a member of the choice set.
func (c *Chooser) Contains(v string) bool { return slices.Contains(c.choices, v) }

// Selection returns the chooser as a domain value.
func (c *Chooser) Selection() domain.Selection {
	return domain.Selection{Value: c.value, Choices: c.Choices()}
}

// withNone prepends None to ids, keeping the host's order.
func withNone(ids []string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, None)
	for _, id := range ids {
		if id == None {
			continue
		}
		out = append(out, id)
	}
	return out
}

// keep returns v if it is one of choices, None otherwise.
func keep(v string, choices []string) string {
	if slices.Contains(choices, v) {
		return v
	}
	return None
}
