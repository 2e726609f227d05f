package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/typedef/pkg/schema"
)

// Overlay contains the outcome of a cast to visualize on the graph.
type Overlay struct {
	// Rejected holds the display names of the definitions that rejected their input.
	Rejected []string
}

// GenerateMermaid produces a Mermaid flowchart of how def is composed.
// It applies semantic styling:
// - Scalar: [Rectangle]
// - Collection: [[Subroutine]]
// - Constrained collection: {{Hexagon}}
// - Nilable: ([Stadium])
// It also marks rejecting definitions if an overlay is provided.
func GenerateMermaid(def schema.Definition, overlay *Overlay) string {
	w := &walker{ids: make(map[string][]string)}
	w.sb.WriteString("graph TD\n")
	w.visit(def)

	// Apply Overlay Styles
	if overlay != nil && len(overlay.Rejected) > 0 {
		w.sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		w.sb.WriteString("    classDef rejected fill:#fee2e2,stroke:#b91c1c,stroke-width:3px,color:#000;\n")

		var marked []string
		for _, name := range overlay.Rejected {
			for _, id := range w.ids[name] {
				if !slices.Contains(marked, id) {
					marked = append(marked, id)
					fmt.Fprintf(&w.sb, "    class %s rejected;\n", id)
				}
			}
		}
	}

	return w.sb.String()
}

type walker struct {
	sb   strings.Builder
	next int
	ids  map[string][]string
}

func (w *walker) visit(def schema.Definition) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++
	name := def.String()
	w.ids[name] = append(w.ids[name], id)

	inner := unwrap(def)
	opener, closer := "[", "]"
	switch {
	case def.IsNilable():
		opener, closer = "([", "])" // Stadium
	case isConstrained(inner):
		opener, closer = "{{", "}}" // Hexagon
	case isCollection(inner):
		opener, closer = "[[", "]]" // Subroutine
	}
	fmt.Fprintf(&w.sb, "    %s%s\"%s\"%s\n", id, opener, escape(name), closer)

	if n, ok := inner.(*schema.Nilable); ok {
		child := w.visit(n.Wrapped())
		fmt.Fprintf(&w.sb, "    %s -. \"or nil\" .-> %s\n", id, child)
		return id
	}

	if c, ok := inner.(*schema.Constrained); ok {
		base := w.visit(c.Base())
		fmt.Fprintf(&w.sb, "    %s -- \"base\" --> %s\n", id, base)
		for i, d := range c.Constraints() {
			label := "each"
			if c.Arity() > 1 {
				label = fmt.Sprintf("[%d]", i)
			}
			child := w.visit(d)
			fmt.Fprintf(&w.sb, "    %s -- \"%s\" --> %s\n", id, label, child)
		}
	}
	return id
}

// unwrap strips decorators such as instrumentation.
func unwrap(def schema.Definition) schema.Definition {
	for {
		u, ok := def.(interface{ Unwrap() schema.Definition })
		if !ok {
			return def
		}
		def = u.Unwrap()
	}
}

func isConstrained(def schema.Definition) bool {
	_, ok := def.(*schema.Constrained)
	return ok
}

func isCollection(def schema.Definition) bool {
	_, ok := def.(*schema.Collection)
	return ok
}

// escape double quotes in labels for Mermaid
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
