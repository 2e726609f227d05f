package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/typedef"
	"github.com/aretw0/typedef/internal/presentation/tui"
	"github.com/aretw0/typedef/pkg/schema"
)

// ErrInvalid is returned when at least one checked or cast value was rejected.
var ErrInvalid = errors.New("one or more values were rejected")

// Options carries the output settings shared by the commands.
type Options struct {
	Out     io.Writer
	Painter tui.Painter
	Format  string
}

// Check validates every value against expr and prints one verdict per value.
func Check(cat *typedef.Catalog, expr string, values []any, opts Options) error {
	def, err := cat.Find(expr)
	if err != nil {
		return err
	}

	rejected := 0
	for _, v := range values {
		ok := def.Valid(v)
		if !ok {
			rejected++
		}
		fmt.Fprintln(opts.Out, opts.Painter.Verdict(ok))
	}
	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalid, rejected, len(values))
	}
	return nil
}

// Cast casts every value with expr and prints the results in opts.Format.
// Casting stops at the first failure, which is printed as an error chain.
func Cast(cat *typedef.Catalog, expr string, values []any, opts Options) error {
	if _, err := cat.Find(expr); err != nil {
		return err
	}

	for _, v := range values {
		out, err := cat.Cast(expr, v)
		if err != nil {
			fmt.Fprint(opts.Out, opts.Painter.Error(FormatCastError(err)))
			return fmt.Errorf("%w: %s", ErrInvalid, expr)
		}
		if err := Encode(opts.Out, out, opts.Format); err != nil {
			return err
		}
	}
	return nil
}

// FormatCastError renders err one step per line: every definition in the
// cast chain, the element positions between them and the underlying cause.
func FormatCastError(err error) string {
	var b strings.Builder
	depth := 0
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch x := e.(type) {
		case *schema.CastError:
			fmt.Fprintf(&b, "%*scould not cast %#v with %s\n", 2*depth, "", x.Input, x.Definition)
			depth++
		case *schema.ElementError:
			fmt.Fprintf(&b, "%*sat element %#v\n", 2*depth, "", x.Position)
		default:
			fmt.Fprintf(&b, "%*s%v\n", 2*depth, "", e)
			return b.String()
		}
	}
	return b.String()
}
