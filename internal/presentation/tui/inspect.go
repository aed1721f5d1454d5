package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/paramlink/pkg/ports"
)

// InspectMarkdown describes every object, sub-component and numeric parameter
// in the registry as a markdown document.
func InspectMarkdown(title string, reg ports.Registry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	ids := reg.ListObjectIDs()
	if len(ids) == 0 {
		b.WriteString("_The registry is empty._\n")
		return b.String()
	}

	for _, id := range ids {
		fmt.Fprintf(&b, "## %s\n\n", id)
		obj, ok := reg.GetObject(id)
		if !ok {
			b.WriteString("_Listed but not resolvable._\n\n")
			continue
		}
		subs := obj.ListSubComponentIDs()
		if len(subs) == 0 {
			b.WriteString("_No sub-components._\n\n")
			continue
		}
		for _, sid := range subs {
			fmt.Fprintf(&b, "### %s\n\n", sid)
			sub, ok := obj.GetSubComponent(sid)
			if !ok {
				b.WriteString("_Listed but not resolvable._\n\n")
				continue
			}
			names := sub.ListNumericParameterNames()
			if len(names) == 0 {
				b.WriteString("_No numeric parameters._\n\n")
				continue
			}
			b.WriteString("| Parameter | Value | Min | Max | Default | Constrained |\n")
			b.WriteString("|---|---|---|---|---|---|\n")
			for _, n := range names {
				p, ok := sub.GetNumericParameter(n)
				if !ok {
					fmt.Fprintf(&b, "| %s | - | - | - | - | - |\n", n)
					continue
				}
				fmt.Fprintf(&b, "| %s | %g | %g | %g | %g | %t |\n",
					n, p.Value(), p.Min(), p.Max(), p.Default(), p.Constrained())
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
