package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/typedef"
	"github.com/aretw0/typedef/pkg/observability"
	"github.com/aretw0/typedef/pkg/schema"
)

// Kind names the variant of def.
func Kind(def schema.Definition) string {
	switch d := def.(type) {
	case *observability.Instrumented:
		return Kind(d.Unwrap())
	case *schema.Nilable:
		return Kind(d.Wrapped())
	case *schema.Constrained:
		return "constrained collection"
	case *schema.Collection:
		return "collection"
	case *schema.Scalar:
		return "scalar"
	default:
		return "definition"
	}
}

// ListMarkdown renders every registered type as a markdown table.
func ListMarkdown(cat *typedef.Catalog) (string, error) {
	var b strings.Builder
	b.WriteString("# Types\n\n| Name | Kind |\n|---|---|\n")
	for _, name := range cat.Names() {
		def, err := cat.Find(name)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "| %s | %s |\n", name, Kind(def))
	}
	return b.String(), nil
}

// DescribeMarkdown renders the shape of the type expr resolves to.
func DescribeMarkdown(cat *typedef.Catalog, expr string) (string, error) {
	def, err := cat.Find(expr)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", def)
	fmt.Fprintf(&b, "- **Kind:** %s\n", Kind(def))
	fmt.Fprintf(&b, "- **Nilable:** %s\n", yesNo(def.IsNilable()))

	inner := unwrap(def)
	switch d := inner.(type) {
	case *schema.Constrained:
		names := make([]string, 0, d.Arity())
		for _, c := range d.Constraints() {
			names = append(names, "`"+c.String()+"`")
		}
		fmt.Fprintf(&b, "- **Base:** `%s`\n", d.Base())
		fmt.Fprintf(&b, "- **Constraints:** %s\n", strings.Join(names, ", "))
	case interface{ Rules() schema.Rules }:
		validators, casters := d.Rules().Len()
		fmt.Fprintf(&b, "- **Rules:** %d validators, %d casters\n", validators, casters)
	}
	return b.String(), nil
}

func unwrap(def schema.Definition) schema.Definition {
	for {
		switch d := def.(type) {
		case *observability.Instrumented:
			def = d.Unwrap()
		case *schema.Nilable:
			def = d.Wrapped()
		default:
			return def
		}
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
