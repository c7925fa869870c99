package expr

import (
	"fmt"
	"strconv"
)

// ParseError describes a failure to parse expression source text.
type ParseError struct {
	Pos int    // Byte position where parsing failed
	Msg string // What went wrong
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at byte %d: %s", e.Pos, e.Msg)
}

// Parse builds an expression tree from source text.
//
// The grammar is sums of products of atoms, so '*' binds tighter than '+'
// and both are left-associative:
//
//	sum     = product { "+" product }
//	product = atom { "*" atom }
//	atom    = integer | "(" sum ")"
//
// Integers are unsigned decimal literals within the int64 range. ASCII
// whitespace between tokens is ignored. All errors are *ParseError values
// carrying the byte position of the failure.
func Parse(src string) (Expr, error) {
	p := &parser{src: src}
	node, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, &ParseError{
			Pos: p.pos,
			Msg: fmt.Sprintf("unexpected %q after expression", p.src[p.pos]),
		}
	}
	return node, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseSum() (Expr, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '+' {
			return left, nil
		}
		p.pos++
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = Add(left, right)
	}
}

func (p *parser) parseProduct() (Expr, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '*' {
			return left, nil
		}
		p.pos++
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = Mul(left, right)
	}
}

func (p *parser) parseAtom() (Expr, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, &ParseError{Pos: p.pos, Msg: "unexpected end of input"}
	}

	switch c := p.src[p.pos]; {
	case c == '(':
		p.pos++
		node, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return nil, &ParseError{Pos: p.pos, Msg: "missing closing parenthesis"}
		}
		p.pos++
		return node, nil

	case c >= '0' && c <= '9':
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		lit := p.src[start:p.pos]
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, &ParseError{
				Pos: start,
				Msg: fmt.Sprintf("integer literal %q out of range", lit),
			}
		}
		return Lit(v), nil

	default:
		return nil, &ParseError{Pos: p.pos, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
}
