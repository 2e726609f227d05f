package registry

import (
	"errors"
	"fmt"
)

// Lookup and registration errors. They are wrapped with the offending name.
var (
	ErrNotFound          = errors.New("type not found")
	ErrAlreadyRegistered = errors.New("type already registered")
	ErrUnnamed           = errors.New("type has no name")
	ErrNotCollection     = errors.New("type is not a collection")
	ErrNoConstraints     = errors.New("no element constraints given")
)

// SyntaxError reports a malformed type expression.
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid type expression %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}
