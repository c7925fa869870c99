package expr

import (
	"fmt"
	"strconv"
)

// Expr is a node in an arithmetic expression tree.
//
// The set of implementations is closed: Literal, Sum, and Product are the
// only variants, and evaluation matches them exhaustively. Trees are
// immutable once constructed and acyclic by construction; each child belongs
// to exactly one parent and is never shared.
type Expr interface {
	// String renders the expression as parenthesized source text.
	String() string

	// isExpr seals the interface to this package's variants.
	isExpr()
}

// Literal is a leaf node holding a constant value.
type Literal struct {
	Value int64
}

// Sum adds its two children. It owns both exclusively.
type Sum struct {
	Left  Expr
	Right Expr
}

// Product multiplies its two children. It owns both exclusively.
type Product struct {
	Left  Expr
	Right Expr
}

// Lit creates a literal node.
func Lit(v int64) *Literal {
	return &Literal{Value: v}
}

// Add creates a sum node over the two operands.
func Add(left, right Expr) *Sum {
	return &Sum{Left: left, Right: right}
}

// Mul creates a product node over the two operands.
func Mul(left, right Expr) *Product {
	return &Product{Left: left, Right: right}
}

func (l *Literal) isExpr() {}
func (s *Sum) isExpr()     {}
func (p *Product) isExpr() {}

// String returns the literal value in decimal.
func (l *Literal) String() string {
	return strconv.FormatInt(l.Value, 10)
}

// String returns the sum as "(left + right)".
func (s *Sum) String() string {
	return fmt.Sprintf("(%s + %s)", s.Left, s.Right)
}

// String returns the product as "(left * right)".
func (p *Product) String() string {
	return fmt.Sprintf("(%s * %s)", p.Left, p.Right)
}
