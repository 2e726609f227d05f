package registry

import (
	"fmt"
	"unicode"
)

// node is a parsed type expression:
//
//	expr := ident [ "(" expr { "=>" expr } ")" ] [ "?" ]
type node struct {
	name    string
	args    []*node
	nilable bool
}

type parser struct {
	src []rune
	pos int
}

func parse(expr string) (*node, error) {
	p := &parser{src: []rune(expr)}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.fail("unexpected %q", string(p.src[p.pos]))
	}
	return n, nil
}

func (p *parser) expr() (*node, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && isIdentRune(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		if p.pos == len(p.src) {
			return nil, p.fail("missing type name")
		}
		return nil, p.fail("unexpected %q", string(p.src[p.pos]))
	}
	n := &node{name: string(p.src[start:p.pos])}

	if p.accept("(") {
		for {
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			n.args = append(n.args, arg)
			if p.accept("=>") {
				continue
			}
			if p.accept(")") {
				break
			}
			return nil, p.fail("expected \"=>\" or \")\"")
		}
	}

	n.nilable = p.accept("?")
	return n, nil
}

// accept consumes tok after optional whitespace.
func (p *parser) accept(tok string) bool {
	p.skipSpace()
	want := []rune(tok)
	if len(p.src)-p.pos < len(want) {
		return false
	}
	for i, r := range want {
		if p.src[p.pos+i] != r {
			return false
		}
	}
	p.pos += len(want)
	return true
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) fail(format string, args ...any) error {
	return &SyntaxError{Expr: string(p.src), Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}
